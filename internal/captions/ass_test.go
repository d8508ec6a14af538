package captions

import (
	"strings"
	"testing"

	"github.com/nikhil-reddy05/auto-captions/internal/types"
)

func TestRender_ConcreteScenario(t *testing.T) {
	t.Parallel()

	words := []types.WordTiming{
		{Text: "hello", Start: 0.32, End: 0.61},
		{Text: "world", Start: 0.62, End: 0.95},
		{Text: "today", Start: 0.96, End: 1.20},
	}
	st := DefaultStyle()
	st.WordsPerBlock = 2

	doc, err := Render(words, st)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	events := dialogueLines(doc)
	if len(events) != 2 {
		t.Fatalf("expected 2 dialogue events, got %d:\n%s", len(events), doc)
	}
	if !strings.HasPrefix(events[0], "Dialogue: 0,0:00:00.32,0:00:00.95,Cap,") {
		t.Fatalf("unexpected first event window: %s", events[0])
	}
	if !strings.HasPrefix(events[1], "Dialogue: 0,0:00:00.96,0:00:01.20,Cap,") {
		t.Fatalf("unexpected second event window: %s", events[1])
	}
	if !strings.HasSuffix(events[0], `{\k29}HELLO {\k33}WORLD`) {
		t.Fatalf("unexpected first event payload: %s", events[0])
	}
	if !strings.HasSuffix(events[1], `{\k24}TODAY`) {
		t.Fatalf("unexpected second event payload: %s", events[1])
	}
}

func TestRender_EmptyInput(t *testing.T) {
	t.Parallel()

	doc, err := Render(nil, DefaultStyle())
	if err != nil {
		t.Fatalf("empty input must not error: %v", err)
	}
	if !strings.Contains(doc, "[Script Info]") || !strings.Contains(doc, "[V4+ Styles]") || !strings.Contains(doc, "[Events]") {
		t.Fatalf("expected full header in empty document:\n%s", doc)
	}
	if got := dialogueLines(doc); len(got) != 0 {
		t.Fatalf("expected zero dialogue events, got %d", len(got))
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	words := []types.WordTiming{
		{Text: "one", Start: 0, End: 0.4},
		{Text: "two", Start: 0.4, End: 0.9},
		{Text: "three", Start: 1.0, End: 1.6},
	}
	st := DefaultStyle()
	a, err := Render(words, st)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := Render(words, st)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if a != b {
		t.Fatalf("serialization is not byte-identical across runs")
	}
}

func TestRender_InvalidConfigBeforeLayout(t *testing.T) {
	t.Parallel()

	st := DefaultStyle()
	st.WordsPerBlock = 0
	if _, err := Render(wordSeq(3), st); err == nil {
		t.Fatalf("expected ConfigError for words-per-block=0")
	}
}

func TestRender_OverlapClampInOutput(t *testing.T) {
	t.Parallel()

	words := []types.WordTiming{
		{Text: "a", Start: 0.0, End: 0.5},
		{Text: "b", Start: 0.3, End: 0.8},
	}
	st := DefaultStyle()
	st.WordsPerBlock = 2
	doc, err := Render(words, st)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// a runs 50cs from the block start, so b's rendered highlight begins at
	// 0.5, not at its raw 0.3 start; b then runs 30cs.
	if !strings.Contains(doc, `{\k50}A {\k30}B`) {
		t.Fatalf("expected clamped karaoke durations, got:\n%s", doc)
	}
}

func TestDocument_HeaderCarriesStyle(t *testing.T) {
	t.Parallel()

	st := DefaultStyle()
	st.FontName = "Inter"
	st.FontSize = 64
	st.PlayResX = 1920
	st.PlayResY = 1080
	st.MarginV = 90
	st.MarginLR = 40

	doc, err := Document(nil, st)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	for _, want := range []string{
		"PlayResX: 1920",
		"PlayResY: 1080",
		"Style: Cap,Inter,64,&H0017B1FF,&H00FFFFFF,&H00000000,",
		",40,40,90,1",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("header missing %q:\n%s", want, doc)
		}
	}
}

func TestDocument_NoUppercase(t *testing.T) {
	t.Parallel()

	st := DefaultStyle()
	st.Uppercase = false
	blocks, err := Group([]types.WordTiming{{Text: "Hello", Start: 0, End: 0.5}}, 1)
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	doc, err := Document(blocks, st)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if !strings.Contains(doc, `{\k50}Hello`) {
		t.Fatalf("expected original casing, got:\n%s", doc)
	}
}

func TestDocument_MinimumDuration(t *testing.T) {
	t.Parallel()

	// A word fully swallowed by the previous one degenerates to a zero-length
	// span, which serializes as the 1cs floor.
	blocks := []Block{newBlock([]types.WordTiming{
		{Text: "long", Start: 0.0, End: 1.0},
		{Text: "gone", Start: 0.2, End: 0.9},
	})}
	doc, err := Document(blocks, DefaultStyle())
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if !strings.Contains(doc, `{\k100}LONG {\k1}GONE`) {
		t.Fatalf("expected 1cs floor for swallowed word, got:\n%s", doc)
	}
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		0:       "0:00:00.00",
		0.32:    "0:00:00.32",
		61.23:   "0:01:01.23",
		3723.45: "1:02:03.45",
		-1:      "0:00:00.00",
	}
	for sec, want := range cases {
		if got := FormatTime(sec); got != want {
			t.Fatalf("FormatTime(%v) = %q, want %q", sec, got, want)
		}
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	if got := sanitize(`{\b1}hi\`); got != `(\\b1)hi\\` {
		t.Fatalf("unexpected sanitize output: %q", got)
	}
}

func dialogueLines(doc string) []string {
	var out []string
	for _, ln := range strings.Split(doc, "\n") {
		if strings.HasPrefix(ln, "Dialogue:") {
			out = append(out, ln)
		}
	}
	return out
}
