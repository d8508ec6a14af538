package captions

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/nikhil-reddy05/auto-captions/internal/types"
)

// Render is the whole transform: validate, group, and serialize. An empty
// word sequence yields a header-only document.
func Render(words []types.WordTiming, st Style) (string, error) {
	if err := st.Validate(); err != nil {
		return "", err
	}
	if err := ValidateWords(words); err != nil {
		return "", err
	}
	blocks, err := Group(words, st.WordsPerBlock)
	if err != nil && !errors.Is(err, ErrEmptyInput) {
		return "", err
	}
	return Document(blocks, st)
}

// Document serializes blocks into an ASS subtitle document. The output is a
// pure function of its inputs: the same blocks and style always produce a
// byte-identical document.
func Document(blocks []Block, st Style) (string, error) {
	var b strings.Builder
	writeHeader(&b, st)
	b.WriteString("\n[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for bi, blk := range blocks {
		hs := Highlights(blk, st.TailHold)
		b.WriteString("Dialogue: 0,")
		b.WriteString(FormatTime(blk.Start))
		b.WriteString(",")
		b.WriteString(FormatTime(blk.End + st.TailHold))
		b.WriteString(",Cap,,0,0,0,,")
		for wi, h := range hs {
			durCS := centis(h.End) - centis(h.Start)
			if durCS < 0 {
				return "", &SerializationError{Block: bi, Word: wi, Reason: fmt.Sprintf("negative highlight duration %dcs", durCS)}
			}
			if durCS < 1 {
				durCS = 1
			}
			if wi > 0 {
				b.WriteString(" ")
			}
			text := sanitize(h.Text)
			if st.Uppercase {
				text = strings.ToUpper(text)
			}
			fmt.Fprintf(&b, "{\\k%d}%s", durCS, text)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func writeHeader(b *strings.Builder, st Style) {
	fmt.Fprintf(b, `[Script Info]
ScriptType: v4.00+
PlayResX: %d
PlayResY: %d
WrapStyle: 2
ScaledBorderAndShadow: yes
YCbCr Matrix: TV.709

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Cap,%s,%d,%s,%s,%s,&H64000000,-1,0,0,0,100,100,0,0,1,%d,%d,2,%d,%d,%d,1
`,
		st.PlayResX, st.PlayResY,
		st.FontName, st.FontSize,
		// Karaoke renderers paint un-reached text with SecondaryColour and
		// reached text with PrimaryColour, so active maps to primary.
		assColor(st.ActiveColor), assColor(st.InactiveColor), assColor(st.OutlineColor),
		st.Outline, st.Shadow,
		st.MarginLR, st.MarginLR, st.MarginV,
	)
}

// FormatTime renders seconds as an ASS timestamp, H:MM:SS.CC with
// centisecond precision.
func FormatTime(sec float64) string {
	cs := centis(sec)
	if cs < 0 {
		cs = 0
	}
	return fmt.Sprintf("%d:%02d:%02d.%02d", cs/360000, cs/6000%60, cs/100%60, cs%100)
}

func centis(sec float64) int {
	return int(math.Round(sec * 100))
}

// sanitize neutralizes characters that would open ASS override blocks or
// escape sequences inside dialogue text.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "{", "(")
	s = strings.ReplaceAll(s, "}", ")")
	return strings.TrimSpace(s)
}
