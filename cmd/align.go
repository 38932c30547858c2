package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"wordsync/internal/config"
	"wordsync/internal/render"
	"wordsync/pkg/model"

	"github.com/spf13/cobra"
)

var (
	format string
	output string
)

var alignCmd = &cobra.Command{
	Use:   "align <audio-file>",
	Short: "Estimate word timings and render them as a table, subtitles or JSON",
	Long: `Align estimates per-word timings for the given text against the audio
clip's duration and renders the result. The timing table and metrics
panel go to stdout and stderr respectively; subtitle and JSON formats
can be written to a file with --output.`,
	Args: cobra.ExactArgs(1),
	RunE: runAlign,
}

func init() {
	alignCmd.Flags().StringVarP(&text, "text", "t", "", "text to align")
	alignCmd.Flags().StringVar(&textFile, "text-file", "", "read text from file")
	alignCmd.Flags().StringVarP(&strategy, "strategy", "s", "", "estimation strategy: syllables or characters")
	alignCmd.Flags().Float64VarP(&durationOverride, "duration", "d", 0, "audio duration in seconds (skips ffprobe)")
	alignCmd.Flags().StringVarP(&format, "format", "f", "", "output format: table, srt, vtt or json")
	alignCmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: stdout)")

	rootCmd.AddCommand(alignCmd)
}

func runAlign(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seq, err := collectSequence(ctx, args[0], cfg.Timing.Strategy)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	chosen := format
	if chosen == "" {
		chosen = cfg.Output.Format
	}

	if err := renderSequence(out, seq, chosen); err != nil {
		return err
	}

	if !quiet {
		render.WriteMetrics(os.Stderr, seq.Metrics)
	}
	return nil
}

func renderSequence(out io.Writer, seq *model.TimingSequence, format string) error {
	switch format {
	case "table":
		return render.WriteTable(out, seq)
	case "srt":
		return render.WriteSRT(out, seq)
	case "vtt":
		return render.WriteVTT(out, seq)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(seq)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
