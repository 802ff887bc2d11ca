package authoring

import (
	"context"
	"fmt"

	"github.com/goliatone/go-webblock/pkg/model"
)

// Option configures a Dialog.
type Option func(*Dialog)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(d *Dialog) {
		if driver != nil {
			d.driver = driver
		}
	}
}

// WithPresets seeds the session from presets.
func WithPresets(p Presets) Option {
	return func(d *Dialog) {
		d.presets = &p
	}
}

// Dialog asks for buttons and layout settings and returns the submitted
// session.
type Dialog struct {
	driver  PromptDriver
	presets *Presets
}

// NewDialog builds a dialog. Without WithPromptDriver it prompts on the
// terminal.
func NewDialog(options ...Option) *Dialog {
	d := &Dialog{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	if d.driver == nil {
		d.driver = NewSurveyDriver()
	}
	return d
}

func (d *Dialog) newSession() *Session {
	if d.presets != nil {
		return NewSessionFromPresets(*d.presets)
	}
	return NewSession()
}

type menuKind int

const (
	menuAdd menuKind = iota
	menuEdit
	menuRemove
	menuDone
)

type menuEntry struct {
	kind  menuKind
	index int
}

// buttonMenu lists add, one edit and one remove entry per button, then done.
func buttonMenu(buttons []model.ButtonDescriptor) ([]string, []menuEntry) {
	labels := []string{"Add a button"}
	entries := []menuEntry{{kind: menuAdd}}
	for i, b := range buttons {
		labels = append(labels, fmt.Sprintf("Edit %d: %s", i+1, b.Label))
		entries = append(entries, menuEntry{kind: menuEdit, index: i})
	}
	for i, b := range buttons {
		labels = append(labels, fmt.Sprintf("Remove %d: %s", i+1, b.Label))
		entries = append(entries, menuEntry{kind: menuRemove, index: i})
	}
	labels = append(labels, "Done")
	entries = append(entries, menuEntry{kind: menuDone})
	return labels, entries
}

// Run drives the prompts and returns the session ready to submit.
func (d *Dialog) Run(ctx context.Context) (*Session, error) {
	session := d.newSession()

	if existing := session.Buttons(); len(existing) > 0 {
		if err := d.driver.Info(ctx, fmt.Sprintf("Starting with %d preset button(s).", len(existing))); err != nil {
			return nil, err
		}
	}

	if err := d.editButtons(ctx, session); err != nil {
		return nil, err
	}
	if err := d.askSettings(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (d *Dialog) editButtons(ctx context.Context, session *Session) error {
	for {
		buttons := session.Buttons()
		labels, entries := buttonMenu(buttons)
		defaultIndex := len(labels) - 1
		if len(buttons) == 0 {
			defaultIndex = 0
		}

		idx, err := d.driver.Select(ctx, SelectConfig{
			Message:      "Buttons",
			Options:      labels,
			DefaultIndex: defaultIndex,
			Help:         fmt.Sprintf("%d button(s) so far", len(buttons)),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(entries) {
			return fmt.Errorf("%w: menu choice %d", ErrButtonIndex, idx)
		}

		entry := entries[idx]
		switch entry.kind {
		case menuDone:
			return nil
		case menuAdd:
			button, err := d.askButton(ctx, model.ButtonDescriptor{})
			if err != nil {
				return err
			}
			session.AddButton(button)
		case menuEdit:
			button, err := d.askButton(ctx, buttons[entry.index])
			if err != nil {
				return err
			}
			if err := session.UpdateButton(entry.index, button); err != nil {
				return err
			}
		case menuRemove:
			ok, err := d.driver.Confirm(ctx, ConfirmConfig{
				Message: fmt.Sprintf("Remove %q?", buttons[entry.index].Label),
				Default: true,
			})
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := session.RemoveButton(entry.index); err != nil {
				return err
			}
		}
	}
}

func (d *Dialog) askButton(ctx context.Context, current model.ButtonDescriptor) (model.ButtonDescriptor, error) {
	label, err := d.driver.Input(ctx, InputConfig{
		Message: "Label",
		Default: current.Label,
		Help:    fmt.Sprintf("Empty labels become %q.", model.DefaultButtonLabel),
	})
	if err != nil {
		return model.ButtonDescriptor{}, err
	}
	url, err := d.driver.Input(ctx, InputConfig{
		Message: "URL",
		Default: current.URL,
		Help:    "Addresses without http:// or https:// get https:// prepended.",
	})
	if err != nil {
		return model.ButtonDescriptor{}, err
	}
	color, err := d.driver.Input(ctx, InputConfig{
		Message: "Color",
		Default: current.Color,
		Help:    "Leave empty to use the block default color.",
	})
	if err != nil {
		return model.ButtonDescriptor{}, err
	}
	return model.ButtonDescriptor{Label: label, URL: url, Color: color}, nil
}

func (d *Dialog) askSettings(ctx context.Context, session *Session) error {
	current := session.Settings()

	width, err := d.driver.Input(ctx, InputConfig{
		Message: "Frame width",
		Default: current.Width,
		Help:    "e.g. 100%, 800px",
	})
	if err != nil {
		return err
	}
	session.SetWidth(width)

	height, err := d.driver.Input(ctx, InputConfig{
		Message: "Frame height",
		Default: current.Height,
		Help:    "e.g. 500px, 50vh",
	})
	if err != nil {
		return err
	}
	session.SetHeight(height)

	sizes := model.ButtonSizes()
	options := make([]string, len(sizes))
	defaultIndex := 0
	for i, size := range sizes {
		options[i] = string(size)
		if size == current.ButtonSize {
			defaultIndex = i
		}
	}
	idx, err := d.driver.Select(ctx, SelectConfig{
		Message:      "Button size",
		Options:      options,
		DefaultIndex: defaultIndex,
		Help:         "Controls padding and font-size",
	})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(sizes) {
		session.SetButtonSize(sizes[idx])
	}

	color, err := d.driver.Input(ctx, InputConfig{
		Message: "Default button color",
		Default: current.DefaultColor,
		Help:    "Used when a button has no color",
	})
	if err != nil {
		return err
	}
	session.SetDefaultColor(color)
	return nil
}
