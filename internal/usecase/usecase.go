package usecase

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/nikhil-reddy05/auto-captions/internal/captions"
	"github.com/nikhil-reddy05/auto-captions/internal/ports"
	"github.com/nikhil-reddy05/auto-captions/internal/types"
	"github.com/nikhil-reddy05/auto-captions/internal/wordfile"
)

type Deps struct {
	Video ports.VideoTool
	ASR   ports.ASR
	Log   *slog.Logger
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	return Usecase{d: d}
}

type PrepareInput struct {
	InputVideo string
	CacheDir   string
	WordsPath  string
	Lowercase  bool
	InitStart  float64
}

// Prepare extracts audio, transcribes it, flattens the transcript to word
// timings, and saves them to WordsPath.
func (u Usecase) Prepare(ctx context.Context, in PrepareInput) ([]types.WordTiming, error) {
	wav := filepath.Join(in.CacheDir, "audio.wav")
	u.d.Log.Info("extracting audio", "input", in.InputVideo)
	if err := u.d.Video.ExtractAudioMono16k(ctx, in.InputVideo, wav); err != nil {
		return nil, err
	}

	u.d.Log.Info("transcribing", "wav", wav)
	tr, err := u.d.ASR.Transcribe(ctx, wav, in.CacheDir)
	if err != nil {
		return nil, err
	}

	words := captions.Flatten(tr, in.Lowercase, in.InitStart)
	if err := wordfile.Save(in.WordsPath, words); err != nil {
		return nil, err
	}
	u.d.Log.Info("word timestamps written", "path", in.WordsPath, "words", len(words))
	return words, nil
}

type RenderInput struct {
	Words   []types.WordTiming
	Style   captions.Style
	OutPath string
}

// Render runs the caption layout transform and writes the subtitle document
// atomically. Returns the number of caption blocks emitted.
func (u Usecase) Render(in RenderInput) (int, error) {
	doc, err := captions.Render(in.Words, in.Style)
	if err != nil {
		return 0, err
	}
	if err := wordfile.WriteAtomic(in.OutPath, []byte(doc)); err != nil {
		return 0, err
	}
	blocks := (len(in.Words) + in.Style.WordsPerBlock - 1) / in.Style.WordsPerBlock
	u.d.Log.Info("subtitles written", "path", in.OutPath, "blocks", blocks)
	return blocks, nil
}

type BurnInput struct {
	InputVideo string
	CacheDir   string
	OutVideo   string
	Style      captions.Style
	Lowercase  bool
	InitStart  float64
}

// Burn is the full pipeline: prepare word timings, render the subtitle
// document into the cache, and composite it onto the video.
func (u Usecase) Burn(ctx context.Context, in BurnInput) error {
	words, err := u.Prepare(ctx, PrepareInput{
		InputVideo: in.InputVideo,
		CacheDir:   in.CacheDir,
		WordsPath:  filepath.Join(in.CacheDir, "word_timestamps.json"),
		Lowercase:  in.Lowercase,
		InitStart:  in.InitStart,
	})
	if err != nil {
		return err
	}

	assPath := filepath.Join(in.CacheDir, "captions.ass")
	if _, err := u.Render(RenderInput{Words: words, Style: in.Style, OutPath: assPath}); err != nil {
		return err
	}

	u.d.Log.Info("burning subtitles", "output", in.OutVideo)
	return u.d.Video.BurnSubtitles(ctx, in.InputVideo, assPath, in.OutVideo)
}
