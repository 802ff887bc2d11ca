package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeURL(t *testing.T) {
	cases := map[string]string{
		"":                     "",
		"   ":                  "",
		"example.com":          "https://example.com",
		"  example.com/a?b=1 ": "https://example.com/a?b=1",
		"HTTP://x.com":         "HTTP://x.com",
		"https://a.test":       "https://a.test",
		"HttpS://mixed.test":   "HttpS://mixed.test",
		"ftp://files.test":     "https://ftp://files.test",
		"httpbin.org":          "https://httpbin.org",
	}
	for input, want := range cases {
		if got := NormalizeURL(input); got != want {
			t.Fatalf("NormalizeURL(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeLabel(t *testing.T) {
	if got := NormalizeLabel(""); got != "none" {
		t.Fatalf("expected none for empty label, got %q", got)
	}
	if got := NormalizeLabel("  \t"); got != "none" {
		t.Fatalf("expected none for blank label, got %q", got)
	}
	if got := NormalizeLabel(" Docs "); got != "Docs" {
		t.Fatalf("expected trimmed label, got %q", got)
	}
}

func TestNormalizeButtonsKeepsColorAndOrder(t *testing.T) {
	input := []ButtonDescriptor{
		{Label: "", URL: "example.com", Color: ""},
		{Label: "B", URL: "http://b.test", Color: "#00ff00"},
	}
	want := []ButtonDescriptor{
		{Label: "none", URL: "https://example.com", Color: ""},
		{Label: "B", URL: "http://b.test", Color: "#00ff00"},
	}
	got := NormalizeButtons(input)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("normalized buttons mismatch (-want +got):\n%s", diff)
	}
	if input[0].Label != "" {
		t.Fatalf("input slice must not be mutated")
	}
}

func TestResolveColor(t *testing.T) {
	cfg := BlockConfig{DefaultColor: "#ff0000"}
	if got := cfg.ResolveColor(ButtonDescriptor{}); got != "#ff0000" {
		t.Fatalf("expected default color, got %q", got)
	}
	if got := cfg.ResolveColor(ButtonDescriptor{Color: "#00ff00"}); got != "#00ff00" {
		t.Fatalf("expected button color, got %q", got)
	}
}

func TestDefaultsTable(t *testing.T) {
	want := Settings{Width: "100%", Height: "500px", ButtonSize: ButtonSizeMedium, DefaultColor: "#007bff"}
	if diff := cmp.Diff(want, Defaults()); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if !ButtonSizeLarge.Known() || ButtonSize("huge").Known() {
		t.Fatalf("Known mismatch")
	}
}
