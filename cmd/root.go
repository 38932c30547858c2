package cmd

import (
	"wordsync/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "wordsync",
	Short: "Estimate word-level timings for a text against an audio clip",
	Long: `Wordsync distributes an audio clip's duration across the words of a
text using a syllable and punctuation heuristic (or a simpler
character-proportional one), then renders the timing table, subtitle
exports, or a live highlight view that follows playback. The audio is
never decoded; only its duration metadata is read.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(verbose, quiet); err != nil {
			return err
		}
		return nil
	},
	SilenceUsage: true,
}

func Execute() error {
	defer func() {
		if logger.Logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}
