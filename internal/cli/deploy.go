package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/deploy"
	"github.com/phamtuanthanh31072004/highlight-flow/pkg/executor"
)

// deployCmd represents the deploy command
var deployCmd = &cobra.Command{
	Use:   "deploy [BUNDLE_DIR]",
	Short: "Publish a generated highlight bundle",
	Example: `  # Push to GitHub Pages (default)
  highlight-flow deploy highlights/my-talk_20260823_143005

  # Print Netlify drag-and-drop instructions instead
  highlight-flow deploy highlights/my-talk_20260823_143005 --netlify`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bundleDir := args[0]

		github, _ := cmd.Flags().GetBool("github")
		netlify, _ := cmd.Flags().GetBool("netlify")

		if netlify {
			abs, err := filepath.Abs(bundleDir)
			if err != nil {
				abs = bundleDir
			}
			fmt.Println(deploy.NetlifyInstructions(abs))
			return nil
		}
		if !github {
			return fmt.Errorf("nothing to deploy to: enable --github or --netlify")
		}

		name := filepath.Base(bundleDir)
		message, _ := cmd.Flags().GetString("message")
		if message == "" {
			message = "Add highlights: " + name
		}

		deployer := deploy.NewGitHub(cfg.Deploy, executor.New(), log)
		url, err := deployer.Deploy(cmd.Context(), bundleDir, name, message)
		if err != nil {
			return err
		}

		fmt.Printf("Deployed: %s\n", url)
		fmt.Println("GitHub Pages can take a minute or two to go live.")
		return nil
	},
}

func init() {
	deployCmd.Flags().Bool("github", true, "Push to GitHub Pages")
	deployCmd.Flags().Bool("netlify", false, "Print Netlify instructions instead of pushing to GitHub Pages")
	deployCmd.Flags().StringP("message", "m", "", "Commit message for the GitHub Pages push")
	rootCmd.AddCommand(deployCmd)
}
