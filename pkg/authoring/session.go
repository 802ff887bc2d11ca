package authoring

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-webblock/pkg/model"
)

// Session is the editing buffer of one authoring run. Buttons are stored as
// typed; normalization happens on Submit.
type Session struct {
	buttons  []model.ButtonDescriptor
	settings model.Settings
}

// NewSession seeds a session from model.Defaults.
func NewSession() *Session {
	return &Session{settings: model.Defaults()}
}

// NewSessionFromPresets seeds a session from presets. Empty preset settings
// fall back to the defaults.
func NewSessionFromPresets(p Presets) *Session {
	s := NewSession()
	for _, b := range p.Buttons {
		s.AddButton(b)
	}
	s.SetWidth(p.Width)
	s.SetHeight(p.Height)
	s.SetButtonSize(p.ButtonSize)
	s.SetDefaultColor(p.DefaultColor)
	return s
}

// Buttons returns a copy of the buffered buttons.
func (s *Session) Buttons() []model.ButtonDescriptor {
	return append([]model.ButtonDescriptor(nil), s.buttons...)
}

// Settings returns the current layout settings.
func (s *Session) Settings() model.Settings {
	return s.settings
}

func (s *Session) AddButton(b model.ButtonDescriptor) int {
	s.buttons = append(s.buttons, b)
	return len(s.buttons) - 1
}

func (s *Session) UpdateButton(i int, b model.ButtonDescriptor) error {
	if i < 0 || i >= len(s.buttons) {
		return fmt.Errorf("%w: %d", ErrButtonIndex, i)
	}
	s.buttons[i] = b
	return nil
}

func (s *Session) RemoveButton(i int) error {
	if i < 0 || i >= len(s.buttons) {
		return fmt.Errorf("%w: %d", ErrButtonIndex, i)
	}
	s.buttons = append(s.buttons[:i], s.buttons[i+1:]...)
	return nil
}

// SetWidth trims value; an empty result resets the default.
func (s *Session) SetWidth(value string) {
	s.settings.Width = orDefault(value, model.DefaultWidth)
}

// SetHeight trims value; an empty result resets the default.
func (s *Session) SetHeight(value string) {
	s.settings.Height = orDefault(value, model.DefaultHeight)
}

// SetDefaultColor trims value; an empty result resets the default.
func (s *Session) SetDefaultColor(value string) {
	s.settings.DefaultColor = orDefault(value, model.DefaultColor)
}

// SetButtonSize accepts only the known sizes; anything else resets the
// default.
func (s *Session) SetButtonSize(size model.ButtonSize) {
	if !size.Known() {
		size = model.DefaultButtonSize
	}
	s.settings.ButtonSize = size
}

// Submit returns the normalized buttons and the settings.
func (s *Session) Submit() ([]model.ButtonDescriptor, model.Settings) {
	return model.NormalizeButtons(s.buttons), s.settings
}

// Config returns the submitted session as a block config.
func (s *Session) Config() model.BlockConfig {
	buttons, settings := s.Submit()
	return model.NewBlockConfig(buttons, settings)
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
