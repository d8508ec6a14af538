package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikhil-reddy05/auto-captions/internal/pipeline"
)

const runTimeout = 3 * time.Hour

func addTranscribeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("whisper-bin", getenvDefault("WHISPER_BIN", "whisper-cli"), "Path to the whisper.cpp binary")
	f.String("whisper-model", getenvDefault("WHISPER_MODEL", ".cache/models/ggml-small.bin"), "Path to the whisper model")
	f.StringP("language", "l", "en", "Language code, empty to auto-detect")
	f.Bool("no-lowercase", false, "Keep original word casing in the timestamps file")
	f.Float64P("init-start", "s", 0, "Bump the first word's start to this time in seconds")
}

// buildConfig assembles the pipeline config shared by all commands.
func buildConfig(cmd *cobra.Command) (pipeline.Config, error) {
	st, err := resolveStyle(cmd)
	if err != nil {
		return pipeline.Config{}, err
	}

	cfg := pipeline.Config{
		Style:       st,
		CacheDir:    getenvDefault("AUTO_CAPTIONS_CACHE", ".cache"),
		FFmpegPath:  getenvDefault("FFMPEG_PATH", "ffmpeg"),
		FFprobePath: getenvDefault("FFPROBE_PATH", "ffprobe"),
		Lowercase:   true,
		Log:         slog.Default(),
	}

	f := cmd.Flags()
	if f.Lookup("whisper-bin") != nil {
		cfg.WhisperBin, _ = f.GetString("whisper-bin")
		cfg.WhisperModel, _ = f.GetString("whisper-model")
		cfg.Language, _ = f.GetString("language")
		noLower, _ := f.GetBool("no-lowercase")
		cfg.Lowercase = !noLower
		cfg.InitStart, _ = f.GetFloat64("init-start")
	}
	return cfg, nil
}

func newPrepareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare <video>",
		Short: "Extract audio and produce a word-timestamps JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			input, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")

			ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
			defer cancel()
			return pipeline.Prepare(ctx, cfg, input, out)
		},
	}
	cmd.Flags().StringP("out", "o", filepath.Join("temp", "word_timestamps.json"), "Output JSON path")
	addTranscribeFlags(cmd)
	return cmd
}

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <words.json>",
		Short: "Convert a word-timestamps JSON file into styled ASS captions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			return pipeline.Render(cfg, args[0], out)
		},
	}
	cmd.Flags().StringP("out", "o", "captions.ass", "Output subtitle path")
	addStyleFlags(cmd)
	return cmd
}

func newBurnCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burn <video>",
		Short: "Transcribe, render captions, and burn them onto the video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			input, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")

			ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
			defer cancel()
			return pipeline.Burn(ctx, cfg, input, out)
		},
	}
	cmd.Flags().StringP("out", "o", "", "Output video path (defaults next to the input)")
	addStyleFlags(cmd)
	addTranscribeFlags(cmd)
	return cmd
}
