package cli

import (
	"os"
	"path/filepath"

	"github.com/imgtools/cutout/internal/i18n"
	"github.com/imgtools/cutout/internal/ui"
	"github.com/spf13/cobra"
)

var cleanForce bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: i18n.CmdCleanShort,
	Long:  i18n.CmdCleanLong,
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanForce, "force", "f", false, i18n.FlagForce)
}

func runClean(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	targets := cleanTargets()
	if len(targets) == 0 {
		ui.PrintInfo(w, i18n.MsgNothingToClean)
		return nil
	}

	if !cleanForce {
		ui.PrintWarning(w, i18n.MsgCleanWarning)
		for _, t := range targets {
			ui.PrintInfo(w, "  "+t)
		}
		prompt := ui.NewPrompt(cmd.InOrStdin(), w)
		ok, err := prompt.Confirm(i18n.MsgCleanConfirm, false)
		if err != nil {
			return err
		}
		if !ok {
			ui.PrintInfo(w, i18n.MsgCancelled)
			return nil
		}
	}

	for _, t := range targets {
		if err := os.Remove(t); err != nil {
			ui.PrintWarning(w, err.Error())
		}
	}
	ui.PrintSuccess(w, i18n.MsgCleanDone)
	return nil
}

// cleanTargets lists the files clean would remove: everything in the
// output folder plus the run logs. Folders themselves are kept.
func cleanTargets() []string {
	var targets []string
	for _, dir := range []string{cfg.OutputDir, cfg.LogsDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			targets = append(targets, filepath.Join(dir, e.Name()))
		}
	}
	return targets
}
