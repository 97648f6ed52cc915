package cmd

import (
	"fmt"

	"github.com/nchapman/murmur/internal/catalog"
	"github.com/nchapman/murmur/internal/logs"
	"github.com/nchapman/murmur/internal/ui"
	"github.com/spf13/cobra"
)

var pullForce bool

var pullCmd = &cobra.Command{
	Use:     "pull <model>",
	Short:   "Download a model",
	GroupID: "model",
	Long: `Download a whisper.cpp model and verify it against its pinned digest.

A model that is already downloaded and intact is left alone.

Examples:
  murmur pull base                # Download the default model
  murmur pull large-v3-turbo      # Download a specific model
  murmur pull tiny --force        # Re-download even if cached`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tier := resolveTier(args[0])

		cfg := loadConfig()
		manager := newManager(cfg)

		entry, _ := catalog.EntryFor(tier)
		logs.Debug("pulling model",
			"model", tier, "size", entry.SizeBytes, "force", pullForce)

		fmt.Printf("Pulling %s (%s)\n",
			ui.Keyword(entry.FileName()), ui.FormatBytes(int64(entry.SizeBytes)))

		path, downloaded, err := manager.PullWithDisplay(
			cmd.Context(), entry, cfg.MaxRetries, pullForce, newProgressBar)
		if err != nil {
			ui.Fatal("%v", err)
		}

		if !downloaded {
			fmt.Printf("Model is up to date: %s\n", ui.Bold(path))
			return
		}

		logs.Debug("pull finished", "model", tier, "path", path)
		fmt.Printf("Pulled %s\n", ui.Keyword(string(tier)))
	},
}

func init() {
	pullCmd.Flags().BoolVarP(&pullForce, "force", "f", false, "Re-download even if the cached copy is valid")
	rootCmd.AddCommand(pullCmd)
}
