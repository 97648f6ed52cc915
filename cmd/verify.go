package cmd

import (
	"fmt"
	"os"

	"github.com/nchapman/murmur/internal/catalog"
	"github.com/nchapman/murmur/internal/modelcache"
	"github.com/nchapman/murmur/internal/ui"
	"github.com/spf13/cobra"
)

var verifyAll bool

var verifyCmd = &cobra.Command{
	Use:     "verify [model]",
	Short:   "Verify cached models against their pinned digests",
	GroupID: "model",
	Long: `Stream every byte of a cached model through SHA-256 and compare the digest
against the catalog. Without arguments all downloaded models are checked.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		manager := newManager(cfg)

		var tiers []catalog.Tier
		if verifyAll || len(args) == 0 {
			tiers = manager.AvailableModels()
			if len(tiers) == 0 {
				fmt.Println(ui.Muted("No models downloaded yet"))
				return
			}
		} else {
			tiers = []catalog.Tier{resolveTier(args[0])}
		}

		failed := 0
		for _, tier := range tiers {
			entry, _ := catalog.EntryFor(tier)

			if !manager.Exists(entry) {
				fmt.Printf("%s %s\n", ui.Keyword(string(tier)), ui.Muted("not downloaded"))
				continue
			}

			bar := ui.NewProgressBar()
			bar.Start(fmt.Sprintf("Verifying %s", tier), int64(entry.SizeBytes))

			ok, err := manager.VerifyModel(entry, func(p modelcache.Progress) {
				bar.Update(p.Current)
			})
			switch {
			case err != nil:
				bar.Stop()
				ui.PrintError("Failed to verify %s: %v", tier, err)
				failed++
			case ok:
				bar.Finish(fmt.Sprintf("%s verified", entry.FileName()))
			default:
				bar.Stop()
				fmt.Printf("%s %s failed verification\n", ui.ErrorMsg(ui.IconCross), ui.Keyword(string(tier)))
				failed++
			}
		}

		if failed > 0 {
			fmt.Println()
			fmt.Printf("Re-download corrupt models with 'murmur pull <model> --force'\n")
			os.Exit(1)
		}
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyAll, "all", false, "Verify every downloaded model")
	rootCmd.AddCommand(verifyCmd)
}
