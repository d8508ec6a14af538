package ports

import (
	"context"
	"time"

	"github.com/nikhil-reddy05/auto-captions/internal/types"
)

// VideoTool wraps the external compositing/extraction binary (ffmpeg).
type VideoTool interface {
	ExtractAudioMono16k(ctx context.Context, inVideo, outWav string) error
	BurnSubtitles(ctx context.Context, inVideo, assPath, outVideo string) error
	ProbeDuration(ctx context.Context, inVideo string) (time.Duration, error)
}

// ASR wraps the external speech-to-text binary (whisper.cpp).
type ASR interface {
	Transcribe(ctx context.Context, wavPath, cacheDir string) (types.Transcript, error)
}
