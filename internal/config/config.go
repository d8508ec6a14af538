// Package config loads the optional TOML style file. Values resolve in
// order: built-in defaults, then the file, then CLI flags.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/nikhil-reddy05/auto-captions/internal/captions"
)

type fileStyle struct {
	WordsPerCap  int     `toml:"words_per_cap"`
	Font         string  `toml:"font"`
	FontSize     int     `toml:"fontsize"`
	Outline      int     `toml:"outline"`
	Shadow       int     `toml:"shadow"`
	MarginV      int     `toml:"margin_v"`
	MarginLR     int     `toml:"margin_lr"`
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	Active       string  `toml:"active"`
	Inactive     string  `toml:"inactive"`
	OutlineColor string  `toml:"outline_color"`
	Uppercase    bool    `toml:"uppercase"`
	TailHold     float64 `toml:"tail_hold"`
}

type file struct {
	Style fileStyle `toml:"style"`
}

// LoadStyle overlays the style file at path onto base. Absent keys keep the
// base values; the result is not validated here, callers validate after the
// CLI flag layer is applied.
func LoadStyle(path string, base captions.Style) (captions.Style, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	f := file{Style: fromStyle(base)}
	if err := toml.Unmarshal(b, &f); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f.Style.toStyle(), nil
}

func fromStyle(s captions.Style) fileStyle {
	return fileStyle{
		WordsPerCap:  s.WordsPerBlock,
		Font:         s.FontName,
		FontSize:     s.FontSize,
		Outline:      s.Outline,
		Shadow:       s.Shadow,
		MarginV:      s.MarginV,
		MarginLR:     s.MarginLR,
		Width:        s.PlayResX,
		Height:       s.PlayResY,
		Active:       s.ActiveColor,
		Inactive:     s.InactiveColor,
		OutlineColor: s.OutlineColor,
		Uppercase:    s.Uppercase,
		TailHold:     s.TailHold,
	}
}

func (f fileStyle) toStyle() captions.Style {
	return captions.Style{
		WordsPerBlock: f.WordsPerCap,
		FontName:      f.Font,
		FontSize:      f.FontSize,
		Outline:       f.Outline,
		Shadow:        f.Shadow,
		MarginV:       f.MarginV,
		MarginLR:      f.MarginLR,
		PlayResX:      f.Width,
		PlayResY:      f.Height,
		ActiveColor:   f.Active,
		InactiveColor: f.Inactive,
		OutlineColor:  f.OutlineColor,
		Uppercase:     f.Uppercase,
		TailHold:      f.TailHold,
	}
}
