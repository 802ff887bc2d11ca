package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-webblock/pkg/model"
)

// Language is the info string of fenced webblock code blocks.
const Language = "webblock"

const (
	keyWidth        = "width"
	keyHeight       = "height"
	keyButtonSize   = "buttonSize"
	keyDefaultColor = "defaultColor"
)

// Serialize writes buttons and layout settings in the block format. Buttons
// are expected to be normalized already; values are written verbatim inside
// the JSON payload with no HTML escaping.
func Serialize(buttons []model.ButtonDescriptor, width, height string, size model.ButtonSize, defaultColor string) (string, error) {
	if buttons == nil {
		buttons = []model.ButtonDescriptor{}
	}

	var payload bytes.Buffer
	enc := json.NewEncoder(&payload)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buttons); err != nil {
		return "", fmt.Errorf("codec: encode buttons: %w", err)
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(payload.String(), "\n"))
	writeSetting(&b, keyWidth, width)
	writeSetting(&b, keyHeight, height)
	writeSetting(&b, keyButtonSize, string(size))
	writeSetting(&b, keyDefaultColor, defaultColor)
	return b.String(), nil
}

// SerializeConfig serializes a whole BlockConfig.
func SerializeConfig(cfg model.BlockConfig) (string, error) {
	return Serialize(cfg.Buttons, cfg.Width, cfg.Height, cfg.ButtonSize, cfg.DefaultColor)
}

// Fence wraps a serialized body in a webblock code fence.
func Fence(body string) string {
	return "```" + Language + "\n" + body + "\n```"
}

// Snippet serializes the block and fences it, ready to be inserted in a
// document.
func Snippet(buttons []model.ButtonDescriptor, settings model.Settings) (string, error) {
	body, err := Serialize(buttons, settings.Width, settings.Height, settings.ButtonSize, settings.DefaultColor)
	if err != nil {
		return "", err
	}
	return Fence(body), nil
}

func writeSetting(b *strings.Builder, key, value string) {
	b.WriteByte('\n')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(value)
}
