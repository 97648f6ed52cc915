package cmd

import (
	"fmt"

	"github.com/nchapman/murmur/internal/selfupdate"
	"github.com/nchapman/murmur/internal/ui"
	"github.com/nchapman/murmur/internal/version"
	"github.com/spf13/cobra"
)

var forceUpdate bool

var updateCmd = &cobra.Command{
	Use:     "update",
	Short:   "Update murmur to the latest version",
	GroupID: "config",
	Run: func(cmd *cobra.Command, args []string) {
		spinner := ui.NewSpinner()
		spinner.Start("Checking for updates...")

		release, err := selfupdate.CheckLatest()
		spinner.Stop(true, "")
		if err != nil {
			ui.Fatal("Failed to check latest release: %v", err)
		}

		installed := version.Version
		latest := release.Version()

		fmt.Printf("  %-12s %s\n", "Installed", installed)
		fmt.Printf("  %-12s %s\n", "Available", latest)
		fmt.Println()

		if !selfupdate.IsNewer(installed, latest) {
			fmt.Println("murmur is already up to date")
			return
		}

		if !forceUpdate {
			if !ui.PromptYesNo(fmt.Sprintf("Update to %s?", latest), false) {
				fmt.Println(ui.Muted("Cancelled"))
				return
			}
		}

		method := selfupdate.DetectInstallMethod()
		if method == selfupdate.InstallUnknown {
			fmt.Println(selfupdate.ManualUpdateInstructions())
			return
		}

		fmt.Println()
		if err := selfupdate.Update(method); err != nil {
			ui.Fatal("Failed to update: %v", err)
		}

		fmt.Printf("Updated to murmur %s\n", latest)
	},
}

func init() {
	updateCmd.Flags().BoolVarP(&forceUpdate, "force", "f", false, "Skip confirmation")
	rootCmd.AddCommand(updateCmd)
}
