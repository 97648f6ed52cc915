package cmd

import (
	"fmt"

	"github.com/nchapman/murmur/internal/catalog"
	"github.com/nchapman/murmur/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List models and their cache status",
	GroupID: "model",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		manager := newManager(cfg)

		downloaded := make(map[catalog.Tier]bool)
		for _, tier := range manager.AvailableModels() {
			downloaded[tier] = true
		}

		fmt.Println(ui.Bold("Models"))
		fmt.Println()
		fmt.Println(ui.Header(fmt.Sprintf("  %-20s %10s %10s  %s", "MODEL", "DISK", "MEMORY", "STATUS")))

		count := 0
		var totalSize int64
		for _, tier := range catalog.Tiers() {
			entry, _ := catalog.EntryFor(tier)

			status := ui.StatusMissing()
			if downloaded[tier] {
				status = ui.StatusDownloaded()
				count++
				totalSize += int64(entry.SizeBytes)
			}

			fmt.Printf("  %-20s %10s %10s  %s\n",
				string(tier),
				ui.FormatBytes(int64(entry.SizeBytes)),
				fmt.Sprintf("~%d MB", entry.MemoryMB),
				status,
			)
		}

		fmt.Println()
		if count == 0 {
			fmt.Println(ui.Muted("No models downloaded yet"))
			fmt.Println()
			fmt.Println("Use 'murmur pull <model>' to download one")
			return
		}

		fmt.Printf("%s %d of %d models downloaded, %s on disk\n",
			ui.Bold("Total:"), count, len(catalog.Tiers()), ui.FormatBytes(totalSize))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
