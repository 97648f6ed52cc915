package cmd

import (
	"fmt"
	"os"

	"github.com/nchapman/murmur/internal/config"
	"github.com/nchapman/murmur/internal/logs"
	"github.com/nchapman/murmur/internal/version"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	cacheDir string
)

var rootCmd = &cobra.Command{
	Use:   "murmur",
	Short: "Keep whisper.cpp models downloaded, verified, and sized to your machine",
	Long: `Murmur manages the ggml models whisper.cpp transcribes with. It downloads
them from Hugging Face, verifies every byte against pinned digests, and
picks the largest model that fits the machine's memory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logs.InitLogger(os.Stderr, verbose)
		if err := config.EnsureDirectories(); err != nil {
			fmt.Printf("Error: Failed to create directories: %v\n", err)
			os.Exit(1)
		}
		// The session log is best effort; a read-only home must not block
		// the command itself.
		if err := logs.OpenSession(); err != nil {
			logs.Debug("failed to open session log", "error", err)
		}
		logs.Debug("murmur starting", "version", version.Version, "command", cmd.Name())
	},
}

func Execute() {
	defer logs.CloseSession()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "Override the model cache directory")
	rootCmd.AddGroup(
		&cobra.Group{ID: "model", Title: "Model Commands:"},
		&cobra.Group{ID: "config", Title: "Configuration Commands:"},
	)
}
