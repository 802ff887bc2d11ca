package model

const (
	DefaultWidth        = "100%"
	DefaultHeight       = "500px"
	DefaultButtonSize   = ButtonSizeMedium
	DefaultColor        = "#007bff"
	DefaultButtonLabel  = "none"
	DefaultSchemePrefix = "https://"
)

// Defaults returns the layout settings used when a block omits them.
func Defaults() Settings {
	return Settings{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		ButtonSize:   DefaultButtonSize,
		DefaultColor: DefaultColor,
	}
}

// NewBlockConfig builds a config from buttons and settings. Empty settings
// values are kept as given; callers that want defaults start from Defaults.
func NewBlockConfig(buttons []ButtonDescriptor, settings Settings) BlockConfig {
	return BlockConfig{
		Buttons:      buttons,
		Width:        settings.Width,
		Height:       settings.Height,
		ButtonSize:   settings.ButtonSize,
		DefaultColor: settings.DefaultColor,
	}
}
