package cmd

import (
	"fmt"
	"runtime"

	"github.com/nchapman/murmur/internal/config"
	"github.com/nchapman/murmur/internal/ui"
	"github.com/nchapman/murmur/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show murmur version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.Bold(fmt.Sprintf("Murmur %s (%s/%s)", version.Version, runtime.GOOS, runtime.GOARCH)))

		fmt.Println()
		fmt.Println(ui.Bold("Paths:"))
		fmt.Printf("  Config:  %s\n", ui.Muted(config.ConfigPath()))
		fmt.Printf("  Models:  %s\n", ui.Muted(config.ModelsPath()))
		fmt.Printf("  Logs:    %s\n", ui.Muted(config.LogsPath()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
