package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/processor"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/watcher"
	"github.com/phamtuanthanh31072004/highlight-flow/pkg/executor"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the input directory and build a page for each transcript dropped in",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
			return err
		}

		proc := processor.New(cfg, executor.New(), log)
		handler := func(ctx context.Context, path string) error {
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			_, err := proc.Run(ctx, processor.Request{
				TranscriptPath: path,
				OutputName:     name,
				Title:          name,
				AutoKeywords:   true,
			})
			return err
		}

		maxConcurrent, _ := cmd.Flags().GetInt("max-concurrent")
		w, err := watcher.New(cfg.Paths.Input, handler, log, maxConcurrent)
		if err != nil {
			return err
		}
		defer w.Stop()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		if err := w.Start(ctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().Int("max-concurrent", 2, "Maximum transcripts processed at once")
	rootCmd.AddCommand(watchCmd)
}
