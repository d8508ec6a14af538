package captions

import (
	"fmt"
	"strconv"
	"strings"
)

// Style holds every rendering option for the subtitle document. It is
// resolved once at the boundary and never mutated afterwards; the layout
// and serialization code reads it by value.
type Style struct {
	WordsPerBlock int

	FontName string
	FontSize int

	Outline int
	Shadow  int

	MarginV  int
	MarginLR int

	PlayResX int
	PlayResY int

	// Colours are #RRGGBB. ActiveColor is applied to the word currently
	// being spoken, InactiveColor to the rest of the line.
	ActiveColor   string
	InactiveColor string
	OutlineColor  string

	Uppercase bool

	// TailHold extends the last word's highlight past its end, in seconds.
	TailHold float64
}

// DefaultStyle mirrors the tool's stock vertical-video look.
func DefaultStyle() Style {
	return Style{
		WordsPerBlock: 3,
		FontName:      "Montserrat",
		FontSize:      92,
		Outline:       7,
		Shadow:        0,
		MarginV:       400,
		MarginLR:      70,
		PlayResX:      1080,
		PlayResY:      1920,
		ActiveColor:   "#FFB117",
		InactiveColor: "#FFFFFF",
		OutlineColor:  "#000000",
		Uppercase:     true,
		TailHold:      0,
	}
}

func (s Style) Validate() error {
	if s.WordsPerBlock < 1 {
		return &ConfigError{Option: "words-per-cap", Value: s.WordsPerBlock, Reason: "must be >= 1"}
	}
	if s.FontName == "" {
		return &ConfigError{Option: "font", Value: s.FontName, Reason: "must not be empty"}
	}
	if s.FontSize < 1 {
		return &ConfigError{Option: "fontsize", Value: s.FontSize, Reason: "must be >= 1"}
	}
	if s.Outline < 0 {
		return &ConfigError{Option: "outline", Value: s.Outline, Reason: "must be >= 0"}
	}
	if s.Shadow < 0 {
		return &ConfigError{Option: "shadow", Value: s.Shadow, Reason: "must be >= 0"}
	}
	if s.MarginV < 0 {
		return &ConfigError{Option: "margin-v", Value: s.MarginV, Reason: "must be >= 0"}
	}
	if s.MarginLR < 0 {
		return &ConfigError{Option: "margin-lr", Value: s.MarginLR, Reason: "must be >= 0"}
	}
	if s.PlayResX < 1 || s.PlayResY < 1 {
		return &ConfigError{
			Option: "resolution",
			Value:  fmt.Sprintf("%dx%d", s.PlayResX, s.PlayResY),
			Reason: "width and height must be >= 1",
		}
	}
	if s.TailHold < 0 {
		return &ConfigError{Option: "tail-hold", Value: s.TailHold, Reason: "must be >= 0"}
	}
	for _, c := range []struct {
		option string
		value  string
	}{
		{"active", s.ActiveColor},
		{"inactive", s.InactiveColor},
		{"outline-color", s.OutlineColor},
	} {
		if _, err := parseRGB(c.value); err != nil {
			return &ConfigError{Option: c.option, Value: c.value, Reason: err.Error()}
		}
	}
	return nil
}

type rgb struct {
	R, G, B uint8
}

func parseRGB(s string) (rgb, error) {
	hexPart := strings.TrimPrefix(s, "#")
	if len(hexPart) != 6 {
		return rgb{}, fmt.Errorf("want #RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(hexPart, 16, 32)
	if err != nil {
		return rgb{}, fmt.Errorf("want #RRGGBB, got %q", s)
	}
	return rgb{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// assColor converts #RRGGBB to the &HAABBGGRR form ASS styles use,
// with an opaque alpha.
func assColor(s string) string {
	c, err := parseRGB(s)
	if err != nil {
		// Style validation runs before serialization; reaching this means
		// the caller skipped Validate. Fall back to opaque white.
		return "&H00FFFFFF"
	}
	return fmt.Sprintf("&H00%02X%02X%02X", c.B, c.G, c.R)
}
