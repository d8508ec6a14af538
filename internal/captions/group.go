package captions

import (
	"strings"

	"github.com/nikhil-reddy05/auto-captions/internal/types"
)

// Block is a group of consecutive words displayed together as one caption
// line. Start and End are the display window in seconds.
type Block struct {
	Words []types.WordTiming
	Start float64
	End   float64
}

// ValidateWords checks the whole sequence before any layout work. The first
// malformed record fails the input; no partial processing happens.
func ValidateWords(words []types.WordTiming) error {
	for i, w := range words {
		if strings.TrimSpace(w.Text) == "" {
			return &InputValidationError{Index: i, Field: "word", Value: w.Text, Reason: "must not be empty"}
		}
		if w.Start < 0 {
			return &InputValidationError{Index: i, Field: "start", Value: w.Start, Reason: "must be >= 0"}
		}
		if w.End <= w.Start {
			return &InputValidationError{Index: i, Field: "end", Value: w.End, Reason: "must be > start"}
		}
		if i > 0 && w.Start < words[i-1].Start {
			return &InputValidationError{Index: i, Field: "start", Value: w.Start, Reason: "out of order"}
		}
	}
	return nil
}

// Group partitions words into consecutive blocks of wordsPerBlock. The final
// block holds the remainder and may be shorter. Every word lands in exactly
// one block, in input order.
func Group(words []types.WordTiming, wordsPerBlock int) ([]Block, error) {
	if wordsPerBlock < 1 {
		return nil, &ConfigError{Option: "words-per-cap", Value: wordsPerBlock, Reason: "must be >= 1"}
	}
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]Block, 0, (len(words)+wordsPerBlock-1)/wordsPerBlock)
	for i := 0; i < len(words); i += wordsPerBlock {
		j := i + wordsPerBlock
		if j > len(words) {
			j = len(words)
		}
		out = append(out, newBlock(words[i:j]))
	}
	return out, nil
}

func newBlock(words []types.WordTiming) Block {
	b := Block{Words: words, Start: words[0].Start, End: words[0].End}
	// Words are ordered by start, so the first start is the minimum. The
	// maximum end still needs a scan: inputs with minor overlap may put it
	// on an earlier word.
	for _, w := range words {
		if w.End > b.End {
			b.End = w.End
		}
	}
	return b
}
