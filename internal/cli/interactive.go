package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/processor"
	"github.com/phamtuanthanh31072004/highlight-flow/pkg/executor"
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build a highlight page by answering prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		fmt.Println("highlight-flow interactive mode")
		fmt.Println()

		url := prompt(reader, "Video URL (blank to use a local transcript): ")
		var transcriptPath string
		if url == "" {
			transcriptPath = prompt(reader, "Path to a .vtt/.srt transcript: ")
			if transcriptPath == "" {
				return fmt.Errorf("either a URL or a transcript is required")
			}
		}

		title := prompt(reader, "Page title (blank for default): ")
		name := prompt(reader, "Output name (blank for default): ")

		fmt.Println()
		fmt.Println("Keyword suggestions: introduction, demo, important, results, tips, conclusion")
		keywordsLine := prompt(reader, "Keywords, comma separated (blank to auto-detect): ")
		var keywords []string
		for _, k := range strings.Split(keywordsLine, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, k)
			}
		}

		cards := 0
		if line := prompt(reader, fmt.Sprintf("Number of cards [%d]: ", cfg.Selector.Cards)); line != "" {
			n, err := strconv.Atoi(line)
			if err != nil {
				return fmt.Errorf("invalid card count %q", line)
			}
			cards = n
		}

		proc := processor.New(cfg, executor.New(), log)
		result, err := proc.Run(cmd.Context(), processor.Request{
			VideoURL:       url,
			TranscriptPath: transcriptPath,
			Keywords:       keywords,
			AutoKeywords:   len(keywords) == 0,
			Cards:          cards,
			Title:          title,
			OutputName:     name,
		})
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("Generated %d highlight cards\n", result.CardCount)
		fmt.Printf("Page: %s\n", result.PagePath)
		return nil
	},
}

func prompt(reader *bufio.Reader, question string) string {
	fmt.Print(question)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
