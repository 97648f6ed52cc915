package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/nchapman/murmur/internal/engine"
	"github.com/nchapman/murmur/internal/logs"
	"github.com/nchapman/murmur/internal/modelcache"
	"github.com/nchapman/murmur/internal/ui"
	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:     "use [model]",
	Short:   "Activate a model for transcription",
	GroupID: "model",
	Long: `Activate a whisper model and record the selection.

Without arguments the configured default model is sized against the memory
budget, stepping down to smaller tiers until one fits. Naming a model trusts
your choice and skips the budget check.

The model must already be downloaded; a corrupt file is re-fetched, a missing
one never is.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		manager := newManager(cfg)

		bootstrap := engine.NewBootstrap(manager, nil, logs.Logger())
		progress, done := modelcache.DisplayFunc(newProgressBar)
		bootstrap.Progress = progress

		var eng *engine.Engine
		var err error
		if len(args) == 1 {
			tier := resolveTier(args[0])
			eng, err = bootstrap.Switch(cmd.Context(), tier)
		} else {
			tier := resolveTier(cfg.DefaultModel)
			eng, err = bootstrap.Start(cmd.Context(), tier)
		}
		done(err)
		if err != nil {
			exitEngineError(err)
		}

		logs.Debug("model activated", "model", eng.Tier, "path", eng.ModelPath)
		fmt.Printf("%s Using %s (%s)\n",
			ui.Success(ui.IconCheck), ui.Keyword(string(eng.Tier)), ui.Muted(eng.ModelPath))
	},
}

// exitEngineError prints an actionable message for each activation failure
// and exits.
func exitEngineError(err error) {
	var notFound *engine.ModelNotFoundError
	var insufficient *engine.InsufficientMemoryError
	var downloadFailed *modelcache.DownloadFailedError

	switch {
	case errors.As(err, &notFound):
		ui.PrintError("Model %s is not downloaded", notFound.Tier)
		fmt.Println()
		fmt.Println("Download it first:")
		fmt.Printf("  murmur pull %s\n", notFound.Tier)

	case errors.As(err, &insufficient):
		ui.PrintError("Not enough memory for %s: needs %d MB, budget is %d MB",
			insufficient.Tier, insufficient.RequiredMB, insufficient.BudgetMB)
		fmt.Println()
		fmt.Println("Tips:")
		fmt.Println("  • Quantized models need far less memory; see 'murmur list'")
		fmt.Println("  • 'murmur use <model>' with an explicit model skips the budget check")

	case errors.As(err, &downloadFailed):
		ui.PrintError("Could not repair the cached model after %d attempts: %v",
			downloadFailed.Attempts, downloadFailed.Err)
		fmt.Println()
		fmt.Println("Check your network and try 'murmur pull <model> --force'")

	default:
		ui.PrintError("%v", err)
	}
	os.Exit(1)
}

func init() {
	rootCmd.AddCommand(useCmd)
}
