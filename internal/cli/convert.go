package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/transcript"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [FILE]",
	Short: "Convert a raw text transcript to WebVTT",
	Long: `Convert a plain text transcript into a .vtt file the pipeline can
use. Lines starting with a timestamp ("02:15 Some text") keep their
timing; untimed text is paced at reading speed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		vtt, err := transcript.ConvertRaw(string(raw))
		if err != nil {
			return err
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" {
			outputFile = strings.TrimSuffix(args[0], ".txt") + ".vtt"
		}
		if err := os.WriteFile(outputFile, []byte(vtt), 0644); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", outputFile)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "Output .vtt path (default: input name with .vtt)")
	rootCmd.AddCommand(convertCmd)
}
