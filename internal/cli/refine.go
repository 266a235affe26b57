package cli

import (
	"fmt"

	"github.com/imgtools/cutout/internal/i18n"
	"github.com/imgtools/cutout/internal/imaging"
	"github.com/imgtools/cutout/internal/ui"
	"github.com/spf13/cobra"
)

var refineMaxSize int

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: i18n.CmdRefineShort,
	Long:  i18n.CmdRefineLong,
	RunE:  runRefine,
}

func init() {
	refineCmd.Flags().IntVar(&refineMaxSize, "max-size", 0, i18n.FlagMaxSize)
}

func runRefine(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	maxSize := refineMaxSize
	if maxSize == 0 {
		maxSize = cfg.MaxSize
	}

	pngs, err := imaging.ListPNGs(cfg.OutputDir)
	if err != nil {
		return err
	}
	if len(pngs) == 0 {
		ui.PrintInfo(w, fmt.Sprintf(i18n.MsgNothingToRefine, cfg.OutputDir))
		return nil
	}

	var bar *ui.ProgressBar
	if !cfg.Quiet {
		bar = ui.NewProgressBar(len(pngs), i18n.MsgRefining, w)
	}
	refined, failures := imaging.RefineDir(cfg.OutputDir, maxSize, func(string) {
		if bar != nil {
			bar.Increment()
		}
	})
	if bar != nil {
		bar.Done()
	}

	for _, err := range failures {
		ui.PrintWarning(w, err.Error())
	}
	ui.PrintSuccess(w, fmt.Sprintf(i18n.MsgRefineSummary, refined, len(failures)))
	return nil
}
