package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nikhil-reddy05/auto-captions/internal/captions"
	"github.com/nikhil-reddy05/auto-captions/internal/types"
	"github.com/nikhil-reddy05/auto-captions/internal/wordfile"
)

func TestPrepare_WritesWordTimestamps(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	video := &fakeVideoTool{}
	uc := New(Deps{Video: video, ASR: fakeASR{tr: testTranscript()}})

	wordsPath := filepath.Join(tmp, "temp", "word_timestamps.json")
	words, err := uc.Prepare(context.Background(), PrepareInput{
		InputVideo: filepath.Join(tmp, "in.mp4"),
		CacheDir:   filepath.Join(tmp, "cache"),
		WordsPath:  wordsPath,
		Lowercase:  true,
	})
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if len(video.extractedWavs) != 1 {
		t.Fatalf("expected 1 audio extraction, got %d", len(video.extractedWavs))
	}
	if len(words) != 2 || words[0].Text != "hello" || words[1].Text != "world" {
		t.Fatalf("unexpected flattened words: %+v", words)
	}

	loaded, err := wordfile.Load(wordsPath)
	if err != nil {
		t.Fatalf("load written words: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 persisted words, got %d", len(loaded))
	}
}

func TestRender_WritesDocument(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "captions.ass")
	uc := New(Deps{Video: &fakeVideoTool{}, ASR: fakeASR{}})

	blocks, err := uc.Render(RenderInput{
		Words: []types.WordTiming{
			{Text: "hello", Start: 0.1, End: 0.7},
			{Text: "world", Start: 0.8, End: 1.4},
		},
		Style:   captions.DefaultStyle(),
		OutPath: out,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if blocks != 1 {
		t.Fatalf("expected 1 block, got %d", blocks)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	if !strings.Contains(string(b), "{\\k") {
		t.Fatalf("expected karaoke tags in generated subtitles")
	}
}

func TestRender_InvalidStyleWritesNothing(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "captions.ass")
	uc := New(Deps{Video: &fakeVideoTool{}, ASR: fakeASR{}})

	st := captions.DefaultStyle()
	st.WordsPerBlock = 0
	_, err := uc.Render(RenderInput{
		Words:   []types.WordTiming{{Text: "x", Start: 0, End: 1}},
		Style:   st,
		OutPath: out,
	})
	if err == nil {
		t.Fatalf("expected config error")
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("failed render must not leave an artifact, stat err=%v", statErr)
	}
}

func TestBurn_CompositesRenderedSubtitles(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	video := &fakeVideoTool{}
	uc := New(Deps{Video: video, ASR: fakeASR{tr: testTranscript()}})

	outVideo := filepath.Join(tmp, "out.mp4")
	err := uc.Burn(context.Background(), BurnInput{
		InputVideo: filepath.Join(tmp, "in.mp4"),
		CacheDir:   filepath.Join(tmp, "cache"),
		OutVideo:   outVideo,
		Style:      captions.DefaultStyle(),
		Lowercase:  true,
	})
	if err != nil {
		t.Fatalf("burn: %v", err)
	}
	if len(video.burnedASS) != 1 {
		t.Fatalf("expected 1 burn call, got %d", len(video.burnedASS))
	}
	if video.burnedOut[0] != outVideo {
		t.Fatalf("unexpected output video: %s", video.burnedOut[0])
	}

	b, err := os.ReadFile(video.burnedASS[0])
	if err != nil {
		t.Fatalf("read subtitles passed to renderer: %v", err)
	}
	if !strings.Contains(string(b), "{\\k") {
		t.Fatalf("expected karaoke tags in burned subtitles")
	}
}

type fakeVideoTool struct {
	extractedWavs []string
	burnedASS     []string
	burnedOut     []string
}

func (f *fakeVideoTool) ExtractAudioMono16k(_ context.Context, _, outWav string) error {
	f.extractedWavs = append(f.extractedWavs, outWav)
	return nil
}

func (f *fakeVideoTool) BurnSubtitles(_ context.Context, _, assPath, outVideo string) error {
	f.burnedASS = append(f.burnedASS, assPath)
	f.burnedOut = append(f.burnedOut, outVideo)
	return nil
}

func (f *fakeVideoTool) ProbeDuration(_ context.Context, _ string) (time.Duration, error) {
	return 0, nil
}

type fakeASR struct {
	tr types.Transcript
}

func (f fakeASR) Transcribe(_ context.Context, _, _ string) (types.Transcript, error) {
	return f.tr, nil
}

func testTranscript() types.Transcript {
	return types.Transcript{
		Segments: []types.Segment{
			{
				Start: 0,
				End:   5,
				Text:  "hello world",
				Words: []types.Word{
					{Start: 0.1, End: 0.7, Word: "Hello"},
					{Start: 0.8, End: 1.4, Word: "World"},
				},
			},
		},
	}
}
