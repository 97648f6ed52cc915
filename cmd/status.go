package cmd

import (
	"errors"
	"fmt"

	"github.com/nchapman/murmur/internal/catalog"
	"github.com/nchapman/murmur/internal/config"
	"github.com/nchapman/murmur/internal/engine"
	"github.com/nchapman/murmur/internal/logs"
	"github.com/nchapman/murmur/internal/modelcache"
	"github.com/nchapman/murmur/internal/sysmem"
	"github.com/nchapman/murmur/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show the memory budget and model selection",
	GroupID: "model",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		manager := newManager(cfg)

		snap, err := sysmem.Host{}.Snapshot()
		if err != nil {
			ui.Fatal("Failed to inspect system memory: %v", err)
		}
		budget := engine.BudgetMB(snap)

		fmt.Println(ui.Header("System"))
		fmt.Println()
		fmt.Printf("  %-12s %s\n", "Physical", ui.FormatBytes(int64(snap.PhysicalBytes)))
		fmt.Printf("  %-12s %s\n", "Swap", ui.FormatBytes(int64(snap.SwapBytes)))
		fmt.Printf("  %-12s %d MB\n", "Budget", budget)
		fmt.Println()

		fmt.Println(ui.Header("Selection"))
		fmt.Println()

		state, err := engine.LoadState()
		switch {
		case err != nil:
			fmt.Printf("  %-12s %s\n", "Active", ui.Muted("unreadable state file"))
			logs.Warn("failed to read state file", "error", err)
		case state != nil:
			fmt.Printf("  %-12s %s\n", "Active", ui.Value(state.ActiveTier))
			fmt.Printf("  %-12s %s\n", "Path", ui.Muted(state.ModelPath))
			fmt.Printf("  %-12s %s\n", "Selected", formatTime(state.SelectedAt))
		default:
			fmt.Printf("  %-12s %s\n", "Active", ui.Muted("none"))
		}

		printPlan(cfg, manager)
		fmt.Println()

		fmt.Println(ui.Header("Models"))
		fmt.Println()

		downloaded := make(map[catalog.Tier]bool)
		for _, tier := range manager.AvailableModels() {
			downloaded[tier] = true
		}

		table := ui.NewTable().
			AddColumn("MODEL", 0, ui.AlignLeft).
			AddColumn("MEMORY", 8, ui.AlignRight).
			AddColumn("CACHED", 6, ui.AlignLeft).
			AddColumn("FIT", 0, ui.AlignLeft)

		fits := 0
		for _, tier := range catalog.Tiers() {
			entry, _ := catalog.EntryFor(tier)

			cached := "-"
			if downloaded[tier] {
				cached = "yes"
			}

			fit := uint64(entry.MemoryMB) <= budget
			if fit {
				fits++
			}

			table.AddRow(
				string(tier),
				fmt.Sprintf("%d MB", entry.MemoryMB),
				cached,
				ui.FitMarker(fit),
			)
		}

		fmt.Print(table.Render())
		fmt.Println()
		fmt.Printf("%d of %d models fit the current budget\n", fits, len(catalog.Tiers()))
	},
}

// printPlan shows what a budget-aware activation of the configured default
// model would pick, without touching the cache or the network.
func printPlan(cfg *config.Config, manager *modelcache.Manager) {
	tier, err := catalog.ParseTier(cfg.DefaultModel)
	if err != nil {
		fmt.Printf("  %-12s %s\n", "Would use", ui.Warning(fmt.Sprintf("invalid default_model %q", cfg.DefaultModel)))
		return
	}

	bootstrap := engine.NewBootstrap(manager, nil, logs.Logger())
	plan, err := bootstrap.Plan(tier)
	if err != nil {
		var insufficient *engine.InsufficientMemoryError
		if errors.As(err, &insufficient) {
			fmt.Printf("  %-12s %s\n", "Would use",
				ui.Warning(fmt.Sprintf("nothing fits (%s needs %d MB, budget is %d MB)",
					insufficient.Tier, insufficient.RequiredMB, insufficient.BudgetMB)))
			return
		}
		fmt.Printf("  %-12s %s\n", "Would use", ui.Muted(err.Error()))
		return
	}

	if plan.Downgraded() {
		fmt.Printf("  %-12s %s %s\n", "Would use",
			ui.Value(string(plan.Entry.ID)),
			ui.Muted(fmt.Sprintf("(downgraded from %s)", plan.Requested)))
		return
	}
	fmt.Printf("  %-12s %s\n", "Would use", ui.Value(string(plan.Entry.ID)))
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
