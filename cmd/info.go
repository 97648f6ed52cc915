package cmd

import (
	"fmt"
	"os"

	"github.com/nchapman/murmur/internal/catalog"
	"github.com/nchapman/murmur/internal/ui"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:     "info <model>",
	Aliases: []string{"show"},
	Short:   "Show model details",
	GroupID: "model",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tier := resolveTier(args[0])
		entry, _ := catalog.EntryFor(tier)

		cfg := loadConfig()
		manager := newManager(cfg)
		cat := newCatalog(cfg)

		fmt.Println(ui.Header(entry.Name))
		fmt.Println()
		fmt.Printf("  %-12s %s\n", "Model", string(entry.ID))
		fmt.Printf("  %-12s %s\n", "File", entry.FileName())
		fmt.Printf("  %-12s %s\n", "Disk size", ui.FormatBytes(int64(entry.SizeBytes)))
		fmt.Printf("  %-12s ~%d MB\n", "Memory", entry.MemoryMB)
		if entry.Fallback != "" {
			fmt.Printf("  %-12s %s\n", "Fallback", string(entry.Fallback))
		}
		fmt.Printf("  %-12s %s\n", "SHA-256", ui.Muted(entry.SHA256))
		fmt.Printf("  %-12s %s\n", "Source", ui.Muted(cat.DownloadURL(entry)))

		path := manager.ModelPath(entry)
		if manager.Exists(entry) {
			fmt.Printf("  %-12s %s\n", "Status", ui.StatusDownloaded())
			fmt.Printf("  %-12s %s\n", "Path", ui.Muted(path))
			if info, err := os.Stat(path); err == nil {
				fmt.Printf("  %-12s %s\n", "Modified", formatTime(info.ModTime()))
			}
		} else {
			fmt.Printf("  %-12s %s\n", "Status", ui.StatusMissing())
		}

		if entry.Description != "" {
			fmt.Println()
			fmt.Println(ui.RenderMarkdown(entry.Description))
		}

		fmt.Println()
		if manager.Exists(entry) {
			fmt.Printf("  murmur use %s\n", tier)
		} else {
			fmt.Printf("  murmur pull %s\n", tier)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
