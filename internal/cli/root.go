// Package cli wires the cobra commands around the highlight pipeline.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/config"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/logger"
)

var (
	cfgPath string
	cfg     *config.Config
	log     logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "highlight-flow",
	Short: "Turn YouTube videos into shareable highlight pages",
	Long: `highlight-flow downloads a video's transcript, picks the most
interesting moments, summarizes each one and renders a static highlight
page you can publish anywhere.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		log = logger.New(cfg.Logging.Level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "Path to the configuration file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
