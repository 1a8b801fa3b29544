package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/processor"
	"github.com/phamtuanthanh31072004/highlight-flow/pkg/executor"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [URL]",
	Short: "Generate a highlight page for a video",
	Example: `  # From a YouTube URL
  highlight-flow generate "https://www.youtube.com/watch?v=tAP1eZYEuKA"

  # From a local caption file, with the URL only used for the player
  highlight-flow generate "https://youtu.be/tAP1eZYEuKA" --transcript talk.vtt

  # Pick segments around specific topics
  highlight-flow generate "https://youtu.be/tAP1eZYEuKA" --keywords introduction,demo,conclusion`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := processor.Request{}
		if len(args) > 0 {
			req.VideoURL = args[0]
		}
		req.TranscriptPath, _ = cmd.Flags().GetString("transcript")
		req.Keywords, _ = cmd.Flags().GetStringSlice("keywords")
		req.AutoKeywords, _ = cmd.Flags().GetBool("auto-keywords")
		req.Cards, _ = cmd.Flags().GetInt("cards")
		req.Title, _ = cmd.Flags().GetString("title")
		req.OutputName, _ = cmd.Flags().GetString("output")

		proc := processor.New(cfg, executor.New(), log)
		result, err := proc.Run(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Generated %d highlight cards\n", result.CardCount)
		fmt.Printf("Page: %s\n", result.PagePath)
		if result.DigestPath != "" {
			fmt.Printf("Digest: %s\n", result.DigestPath)
		}
		fmt.Printf("\nPreview locally:\n  open %s\n", result.PagePath)
		fmt.Printf("Deploy it:\n  highlight-flow deploy %s\n", result.BundleDir)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("transcript", "t", "", "Use a local .vtt/.srt file instead of downloading")
	generateCmd.Flags().StringSliceP("keywords", "k", nil, "Comma-separated keywords to anchor segments")
	generateCmd.Flags().Bool("auto-keywords", false, "Detect keywords from the transcript")
	generateCmd.Flags().IntP("cards", "c", 0, "Number of highlight cards (default from config)")
	generateCmd.Flags().String("title", "", "Page title (default derived from the output name)")
	generateCmd.Flags().StringP("output", "o", "", "Name prefix for the output directory")
	rootCmd.AddCommand(generateCmd)
}
