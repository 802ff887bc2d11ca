package model

import "strings"

// NormalizeLabel trims the label and substitutes DefaultButtonLabel when
// nothing is left.
func NormalizeLabel(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return DefaultButtonLabel
	}
	return trimmed
}

// NormalizeURL trims the address and prefixes https:// when it carries no
// http or https scheme. Scheme detection is case-insensitive and empty input
// stays empty.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if hasHTTPScheme(trimmed) {
		return trimmed
	}
	return DefaultSchemePrefix + trimmed
}

// NormalizeButton applies creation-time normalization. Color passes through
// untouched.
func NormalizeButton(button ButtonDescriptor) ButtonDescriptor {
	return ButtonDescriptor{
		Label: NormalizeLabel(button.Label),
		URL:   NormalizeURL(button.URL),
		Color: button.Color,
	}
}

// NormalizeButtons returns a normalized copy of the slice.
func NormalizeButtons(buttons []ButtonDescriptor) []ButtonDescriptor {
	out := make([]ButtonDescriptor, len(buttons))
	for i, button := range buttons {
		out[i] = NormalizeButton(button)
	}
	return out
}

func hasHTTPScheme(value string) bool {
	lower := strings.ToLower(value)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
