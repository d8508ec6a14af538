package captions

import (
	"strings"

	"github.com/nikhil-reddy05/auto-captions/internal/types"
)

// Flatten turns a segmented transcript into the flat word-timing sequence
// the layout engine consumes. Blank tokens are dropped. When initStart is
// set and the very first word begins earlier, only that word's start is
// bumped; later words keep their recognized timing.
func Flatten(tr types.Transcript, lowercase bool, initStart float64) []types.WordTiming {
	var out []types.WordTiming
	for _, s := range tr.Segments {
		for _, w := range s.Words {
			text := strings.TrimSpace(w.Word)
			if text == "" {
				continue
			}
			if lowercase {
				text = strings.ToLower(text)
			}
			out = append(out, types.WordTiming{Text: text, Start: w.Start, End: w.End})
		}
	}
	if len(out) > 0 && out[0].Start < initStart {
		out[0].Start = initStart
	}
	return out
}
