package authoring

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/goliatone/go-webblock/pkg/codec"
)

// InsertSnippet inserts snippet into doc at a byte offset. The offset is
// clamped to the document and moved back to a rune boundary.
func InsertSnippet(doc string, offset int, snippet string) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(doc) {
		offset = len(doc)
	}
	for offset > 0 && offset < len(doc) && !utf8.RuneStart(doc[offset]) {
		offset--
	}
	return doc[:offset] + snippet + doc[offset:]
}

// Command is the "insert webblock" action: run the dialog, serialize the
// result and insert it at the cursor.
type Command struct {
	Dialog *Dialog
	Log    *slog.Logger
}

// NewCommand wires a command around dialog.
func NewCommand(dialog *Dialog, log *slog.Logger) *Command {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Command{Dialog: dialog, Log: log}
}

// Execute returns doc with the new block inserted at offset. On any dialog
// error the document is returned unchanged together with the error.
func (c *Command) Execute(ctx context.Context, doc string, offset int) (string, error) {
	dialog := c.Dialog
	if dialog == nil {
		dialog = NewDialog()
	}
	log := c.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	session, err := dialog.Run(ctx)
	if err != nil {
		log.Debug("webblock dialog ended", "error", err)
		return doc, err
	}

	buttons, settings := session.Submit()
	snippet, err := codec.Snippet(buttons, settings)
	if err != nil {
		return doc, err
	}

	log.Info("webblock inserted", "buttons", len(buttons), "offset", offset)
	return InsertSnippet(doc, offset, snippet), nil
}
