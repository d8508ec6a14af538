package captions

// Highlight is one word's karaoke sub-event within a block, in absolute
// seconds after clamping.
type Highlight struct {
	Text  string
	Start float64
	End   float64
}

// Highlights computes the per-word highlight spans of a block. Each span is
// the word's own [start, end]; a word starting before the previous word's
// effective end is clamped forward so highlight order stays monotonic, which
// players assume for inline timing tags. tailHold extends the last word's
// span, matching how the line lingers on screen.
func Highlights(b Block, tailHold float64) []Highlight {
	out := make([]Highlight, len(b.Words))
	prevEnd := 0.0
	for i, w := range b.Words {
		start := w.Start
		if i > 0 && start < prevEnd {
			start = prevEnd
		}
		end := w.End
		if i == len(b.Words)-1 {
			end += tailHold
		}
		if end < start {
			end = start
		}
		out[i] = Highlight{Text: w.Text, Start: start, End: end}
		prevEnd = end
	}
	return out
}
