package cli

import (
	"fmt"

	"github.com/imgtools/cutout/internal/i18n"
	"github.com/imgtools/cutout/internal/imaging"
	"github.com/imgtools/cutout/internal/ui"
	"github.com/spf13/cobra"
)

var statusLastOnly bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: i18n.CmdStatusShort,
	Long:  i18n.CmdStatusLong,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusLastOnly, "last", false, i18n.FlagLast)
}

func runStatus(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if !statusLastOnly {
		ui.PrintHeader(w, i18n.UIStatus)

		images, err := imaging.ListImages(cfg.InputDir)
		if err != nil {
			return err
		}
		if len(images) == 0 {
			ui.PrintWarning(w, fmt.Sprintf(i18n.MsgNoImages, cfg.InputDir))
			ui.PrintInfo(w, fmt.Sprintf(i18n.MsgSupportedFormats, imaging.FormatList()))
		} else {
			table := ui.NewTable("Name", "Format", "Size")
			for _, img := range images {
				table.AddRow(
					ui.Truncate(img.Name, 48),
					ui.FormatStyle(img.Ext).Render(img.Ext),
					formatSize(img.Size),
				)
			}
			table.Render(w)
			ui.PrintInfo(w, fmt.Sprintf(i18n.MsgFoundImages, len(images)))
		}
	}

	last, ok := imaging.LastRun(cfg.LogsDir)
	if !ok {
		ui.PrintInfo(w, i18n.MsgNoLastRun)
		return nil
	}
	ui.PrintInfo(w, fmt.Sprintf(i18n.MsgLastRunSummary, last.Processed, last.Failed, last.Duration))
	if last.LogPath != "" && cfg.Verbose {
		ui.PrintInfo(w, ui.StyleMuted.Render(fmt.Sprintf(i18n.MsgLogPath, last.LogPath)))
	}
	return nil
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
