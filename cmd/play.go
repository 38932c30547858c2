package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wordsync/internal/config"
	"wordsync/internal/playback"
	"wordsync/internal/render"

	"github.com/spf13/cobra"
)

var intervalMs int

var playCmd = &cobra.Command{
	Use:   "play <audio-file>",
	Short: "Follow a playback clock and highlight the active word live",
	Long: `Play runs the estimation pass and then follows a wall-clock playback
position from zero to the clip's duration, re-rendering the text with
the currently spoken word highlighted. Start the audio in your player
at the same moment for a rough karaoke view.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&text, "text", "t", "", "text to align")
	playCmd.Flags().StringVar(&textFile, "text-file", "", "read text from file")
	playCmd.Flags().StringVarP(&strategy, "strategy", "s", "", "estimation strategy: syllables or characters")
	playCmd.Flags().Float64VarP(&durationOverride, "duration", "d", 0, "audio duration in seconds (skips ffprobe)")
	playCmd.Flags().IntVar(&intervalMs, "interval", 0, "highlight refresh interval in milliseconds")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
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

	interval := intervalMs
	if interval <= 0 {
		interval = cfg.Playback.IntervalMs
	}
	if interval <= 0 {
		interval = 100
	}

	sync := playback.NewSynchronizer()
	sync.Load(seq)

	err = playback.Follow(ctx, sync, time.Duration(interval)*time.Millisecond, func(f playback.Frame) {
		// Redraw the line in place.
		fmt.Fprintf(os.Stdout, "\r\x1b[K[%6.2fs] %s", f.Position, render.HighlightLine(seq, f.Active))
	})
	fmt.Fprintln(os.Stdout)

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
