package model

// ButtonSize selects the padding/font-size preset applied to every button of
// a block. Values read from text that are not one of the known sizes are kept
// verbatim; the widget builder simply finds no style for them.
type ButtonSize string

const (
	ButtonSizeSmall  ButtonSize = "small"
	ButtonSizeMedium ButtonSize = "medium"
	ButtonSizeLarge  ButtonSize = "large"
)

// ButtonSizes lists the known sizes in display order.
func ButtonSizes() []ButtonSize {
	return []ButtonSize{ButtonSizeSmall, ButtonSizeMedium, ButtonSizeLarge}
}

// Known reports whether the size is one of the three presets.
func (s ButtonSize) Known() bool {
	switch s {
	case ButtonSizeSmall, ButtonSizeMedium, ButtonSizeLarge:
		return true
	default:
		return false
	}
}

// ButtonDescriptor is one button of a block. Color is optional; an empty
// value defers to the block default color at render time.
type ButtonDescriptor struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
	Color string `json:"color" yaml:"color"`
}

// BlockConfig is the in-memory form of a webblock. Buttons keep display
// order and may be empty.
type BlockConfig struct {
	Buttons      []ButtonDescriptor `json:"buttons" yaml:"buttons"`
	Width        string             `json:"width" yaml:"width"`
	Height       string             `json:"height" yaml:"height"`
	ButtonSize   ButtonSize         `json:"buttonSize" yaml:"buttonSize"`
	DefaultColor string             `json:"defaultColor" yaml:"defaultColor"`
}

// Settings groups the four layout values that follow the button payload.
type Settings struct {
	Width        string     `json:"width" yaml:"width"`
	Height       string     `json:"height" yaml:"height"`
	ButtonSize   ButtonSize `json:"buttonSize" yaml:"buttonSize"`
	DefaultColor string     `json:"defaultColor" yaml:"defaultColor"`
}

// Settings extracts the layout values of the block.
func (c BlockConfig) Settings() Settings {
	return Settings{
		Width:        c.Width,
		Height:       c.Height,
		ButtonSize:   c.ButtonSize,
		DefaultColor: c.DefaultColor,
	}
}

// ResolveColor returns the effective background color for a button.
func (c BlockConfig) ResolveColor(button ButtonDescriptor) string {
	if button.Color != "" {
		return button.Color
	}
	return c.DefaultColor
}
