package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/nikhil-reddy05/auto-captions/internal/captions"
	"github.com/nikhil-reddy05/auto-captions/internal/ports"
	"github.com/nikhil-reddy05/auto-captions/internal/ports/adapters/ffmpeg"
	"github.com/nikhil-reddy05/auto-captions/internal/ports/adapters/whispercpp"
	"github.com/nikhil-reddy05/auto-captions/internal/types"
	"github.com/nikhil-reddy05/auto-captions/internal/usecase"
	"github.com/nikhil-reddy05/auto-captions/internal/wordfile"
)

type Config struct {
	Style captions.Style

	// CacheDir is the base directory for intermediate artifacts (audio,
	// transcripts). If empty, defaults to ".cache".
	CacheDir string

	FFmpegPath  string
	FFprobePath string

	WhisperBin   string
	WhisperModel string
	Language     string

	Lowercase bool
	InitStart float64

	Log *slog.Logger
}

func (c Config) Validate() error {
	if err := c.Style.Validate(); err != nil {
		return err
	}
	if c.InitStart < 0 {
		return &captions.ConfigError{Option: "init-start", Value: c.InitStart, Reason: "must be >= 0"}
	}
	return nil
}

// validateVideoInput covers the checks only the transcribing commands need.
func (c Config) validateVideoInput(input string) error {
	if input == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.WhisperBin == "" {
		return errors.New("whisper binary path is required")
	}
	if c.WhisperModel == "" {
		return errors.New("whisper model path is required")
	}
	return nil
}

func (c Config) build() usecase.Usecase {
	return usecase.New(usecase.Deps{
		Video: ffmpeg.New(c.FFmpegPath, c.FFprobePath),
		ASR:   whispercpp.New(c.WhisperBin, c.WhisperModel, c.Language),
		Log:   c.Log,
	})
}

func (c Config) cacheDirFor(input string) (string, error) {
	base := c.CacheDir
	if base == "" {
		base = ".cache"
	}
	dir := filepath.Join(base, "runs", hash(input))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Prepare produces the word-timestamps JSON for a video.
func Prepare(ctx context.Context, cfg Config, inputVideo, wordsPath string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.validateVideoInput(inputVideo); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cacheDir, err := cfg.cacheDirFor(inputVideo)
	if err != nil {
		return err
	}
	if wordsPath == "" {
		wordsPath = filepath.Join("temp", "word_timestamps.json")
	}
	_, err = cfg.build().Prepare(ctx, usecase.PrepareInput{
		InputVideo: inputVideo,
		CacheDir:   cacheDir,
		WordsPath:  wordsPath,
		Lowercase:  cfg.Lowercase,
		InitStart:  cfg.InitStart,
	})
	return err
}

// Render turns a word-timestamps JSON file into a subtitle document.
func Render(cfg Config, wordsPath, outPath string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	words, err := wordfile.Load(wordsPath)
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = DefaultOutputName(wordsPath, ".ass")
	}
	_, err = cfg.build().Render(usecase.RenderInput{
		Words:   words,
		Style:   cfg.Style,
		OutPath: outPath,
	})
	return err
}

// Burn runs the full pipeline: transcribe, lay out captions, and composite
// them onto the video.
func Burn(ctx context.Context, cfg Config, inputVideo, outVideo string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.validateVideoInput(inputVideo); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cacheDir, err := cfg.cacheDirFor(inputVideo)
	if err != nil {
		return err
	}
	if outVideo == "" {
		outVideo = DefaultOutputName(inputVideo, "-captioned.mp4")
	}
	if err := os.MkdirAll(filepath.Dir(outVideo), 0o755); err != nil {
		return err
	}
	return cfg.build().Burn(ctx, usecase.BurnInput{
		InputVideo: inputVideo,
		CacheDir:   cacheDir,
		OutVideo:   outVideo,
		Style:      cfg.Style,
		Lowercase:  cfg.Lowercase,
		InitStart:  cfg.InitStart,
	})
}

// LoadWords exposes word file loading for read-only commands.
func LoadWords(wordsPath string) ([]types.WordTiming, error) {
	return wordfile.Load(wordsPath)
}

// DefaultOutputName derives an output file name next to src: the source
// base name normalized to a safe path segment plus the given suffix.
func DefaultOutputName(src, suffix string) string {
	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	name = normalizePathSegment(name)
	if name == "" {
		name = "output"
	}
	return filepath.Join(filepath.Dir(src), name+suffix)
}

func normalizePathSegment(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:12]
}

// ensure adapters implement ports
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.ASR = (*whispercpp.Adapter)(nil)
