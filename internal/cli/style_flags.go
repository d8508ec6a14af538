package cli

import (
	"github.com/spf13/cobra"

	"github.com/nikhil-reddy05/auto-captions/internal/captions"
	"github.com/nikhil-reddy05/auto-captions/internal/config"
)

func addStyleFlags(cmd *cobra.Command) {
	def := captions.DefaultStyle()
	f := cmd.Flags()
	f.Int("words-per-cap", def.WordsPerBlock, "Words per caption block")
	f.String("font", def.FontName, "Font family")
	f.Int("fontsize", def.FontSize, "Font size")
	f.Int("outline", def.Outline, "Outline width")
	f.Int("shadow", def.Shadow, "Shadow depth")
	f.Int("margin-v", def.MarginV, "Vertical margin from the frame edge")
	f.Int("margin-lr", def.MarginLR, "Horizontal margin from the frame edges")
	f.Int("width", def.PlayResX, "Frame width the document declares")
	f.Int("height", def.PlayResY, "Frame height the document declares")
	f.String("active", def.ActiveColor, "Highlight colour (#RRGGBB)")
	f.String("inactive", def.InactiveColor, "Base text colour (#RRGGBB)")
	f.String("outline-color", def.OutlineColor, "Outline colour (#RRGGBB)")
	f.Bool("no-uppercase", false, "Keep original word casing")
	f.Float64("tail-hold", def.TailHold, "Seconds to hold the last word's highlight")
}

// resolveStyle layers the optional TOML config file and any explicitly set
// flags over the defaults. Flags win over the file.
func resolveStyle(cmd *cobra.Command) (captions.Style, error) {
	st := captions.DefaultStyle()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		st, err = config.LoadStyle(path, st)
		if err != nil {
			return captions.Style{}, err
		}
	}

	f := cmd.Flags()
	if f.Changed("words-per-cap") {
		st.WordsPerBlock, _ = f.GetInt("words-per-cap")
	}
	if f.Changed("font") {
		st.FontName, _ = f.GetString("font")
	}
	if f.Changed("fontsize") {
		st.FontSize, _ = f.GetInt("fontsize")
	}
	if f.Changed("outline") {
		st.Outline, _ = f.GetInt("outline")
	}
	if f.Changed("shadow") {
		st.Shadow, _ = f.GetInt("shadow")
	}
	if f.Changed("margin-v") {
		st.MarginV, _ = f.GetInt("margin-v")
	}
	if f.Changed("margin-lr") {
		st.MarginLR, _ = f.GetInt("margin-lr")
	}
	if f.Changed("width") {
		st.PlayResX, _ = f.GetInt("width")
	}
	if f.Changed("height") {
		st.PlayResY, _ = f.GetInt("height")
	}
	if f.Changed("active") {
		st.ActiveColor, _ = f.GetString("active")
	}
	if f.Changed("inactive") {
		st.InactiveColor, _ = f.GetString("inactive")
	}
	if f.Changed("outline-color") {
		st.OutlineColor, _ = f.GetString("outline-color")
	}
	if f.Changed("no-uppercase") {
		noUpper, _ := f.GetBool("no-uppercase")
		st.Uppercase = !noUpper
	}
	if f.Changed("tail-hold") {
		st.TailHold, _ = f.GetFloat64("tail-hold")
	}
	return st, nil
}
