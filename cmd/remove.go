package cmd

import (
	"fmt"
	"os"

	"github.com/nchapman/murmur/internal/catalog"
	"github.com/nchapman/murmur/internal/engine"
	"github.com/nchapman/murmur/internal/logs"
	"github.com/nchapman/murmur/internal/ui"
	"github.com/spf13/cobra"
)

var (
	rmForce bool
	rmAll   bool
	rmTmp   bool
)

var removeCmd = &cobra.Command{
	Use:     "remove [model]",
	Aliases: []string{"rm"},
	Short:   "Remove downloaded models",
	GroupID: "model",
	Long: `Remove downloaded models from the cache.

Examples:
  murmur remove base        Remove one model
  murmur remove --all       Remove every downloaded model
  murmur remove --tmp       Sweep partial files left by interrupted downloads`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		manager := newManager(cfg)

		if rmTmp {
			count, err := manager.CleanupTempFiles()
			if err != nil {
				ui.Fatal("Failed to clean up partial downloads: %v", err)
			}
			if count == 0 {
				fmt.Println("No partial downloads found")
			} else {
				fmt.Printf("Removed %d partial download(s)\n", count)
			}
			return
		}

		var tiers []catalog.Tier
		switch {
		case rmAll:
			tiers = manager.AvailableModels()
			if len(tiers) == 0 {
				fmt.Println("No models downloaded")
				return
			}
		case len(args) == 1:
			tier := resolveTier(args[0])
			entry, _ := catalog.EntryFor(tier)
			if !manager.Exists(entry) {
				fmt.Printf("%s is not downloaded\n", tier)
				return
			}
			tiers = []catalog.Tier{tier}
		default:
			ui.PrintError("Specify a model or use --all/--tmp")
			fmt.Println()
			fmt.Println("Examples:")
			fmt.Println("  murmur remove base")
			fmt.Println("  murmur remove --all")
			os.Exit(1)
		}

		type removal struct {
			entry catalog.Entry
			size  int64
		}

		var removals []removal
		var totalSize int64
		for _, tier := range tiers {
			entry, _ := catalog.EntryFor(tier)
			size := int64(entry.SizeBytes)
			if info, err := os.Stat(manager.ModelPath(entry)); err == nil {
				size = info.Size()
			}
			removals = append(removals, removal{entry: entry, size: size})
			totalSize += size
		}

		if !rmForce {
			fmt.Println("Models to remove:")
			fmt.Println()
			for _, r := range removals {
				fmt.Printf("  %s (%s)\n", r.entry.FileName(), ui.FormatBytes(r.size))
			}
			fmt.Println()

			var prompt string
			if len(removals) == 1 {
				prompt = fmt.Sprintf("Remove %s (%s)?",
					removals[0].entry.ID, ui.FormatBytes(removals[0].size))
			} else {
				prompt = fmt.Sprintf("Remove %d models, %s total?",
					len(removals), ui.FormatBytes(totalSize))
			}

			if !ui.PromptYesNo(prompt, false) {
				fmt.Println(ui.Muted("Cancelled"))
				return
			}
		}

		removed := 0
		var freedSize int64
		var lastRemoved catalog.Tier
		for _, r := range removals {
			if err := manager.Remove(r.entry); err != nil {
				ui.PrintError("Failed to remove %s: %v", r.entry.ID, err)
				continue
			}
			logs.Debug("removed model", "model", r.entry.ID, "size", r.size)
			removed++
			freedSize += r.size
			lastRemoved = r.entry.ID

			clearStateFor(r.entry.ID)
		}

		if removed == 1 {
			fmt.Printf("Removed %s\n", lastRemoved)
		} else {
			fmt.Printf("Removed %d models, %s freed\n", removed, ui.FormatBytes(freedSize))
		}
	},
}

// clearStateFor drops the recorded selection when its model is removed, so
// status does not report an active model that no longer exists.
func clearStateFor(tier catalog.Tier) {
	state, err := engine.LoadState()
	if err != nil || state == nil || state.ActiveTier != string(tier) {
		return
	}
	if err := engine.ClearState(); err != nil {
		logs.Warn("failed to clear state file", "error", err)
		return
	}
	fmt.Println(ui.Muted("Cleared active selection"))
}

func init() {
	removeCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "Skip confirmation")
	removeCmd.Flags().BoolVar(&rmAll, "all", false, "Remove every downloaded model")
	removeCmd.Flags().BoolVar(&rmTmp, "tmp", false, "Remove partial downloads instead of models")
	rootCmd.AddCommand(removeCmd)
}
