package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

func (a *Adapter) ExtractAudioMono16k(ctx context.Context, inVideo, outWav string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inVideo,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-f", "wav",
		outWav,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w\n%s", err, string(b))
	}
	return nil
}

func (a *Adapter) BurnSubtitles(ctx context.Context, inVideo, assPath, outVideo string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", inVideo,
		"-vf", "ass="+escapeFilterPath(assPath),
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-crf", "18",
		"-c:a", "copy",
		outVideo,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg burn subtitles: %w\n%s", err, string(b))
	}
	return nil
}

func (a *Adapter) ProbeDuration(ctx context.Context, inVideo string) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		inVideo,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return time.Duration(sec * float64(time.Second)), nil
}

func escapeFilterPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "\\\\")
	p = strings.ReplaceAll(p, ":", "\\:")
	return p
}
