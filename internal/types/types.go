package types

// Transcript is the JSON shape whisper.cpp produces with -oj.
type Transcript struct {
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Words []Word  `json:"words,omitempty"`
}

type Word struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
}

// WordTiming is one recognized spoken word with its timing in seconds.
// This is the record shape of the word-timestamps JSON file exchanged
// between the prepare and render steps.
type WordTiming struct {
	Text  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}
