package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/imgtools/cutout/internal/config"
	"github.com/imgtools/cutout/internal/i18n"
	"github.com/imgtools/cutout/internal/ui"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: i18n.CmdInitShort,
	Long:  i18n.CmdInitLong,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, i18n.FlagForce)
}

func runInit(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if err := cfg.EnsureDirs(); err != nil {
		return err
	}
	dirs := strings.Join([]string{cfg.InputDir, cfg.OutputDir, cfg.LogsDir}, ", ")
	ui.PrintSuccess(w, fmt.Sprintf(i18n.MsgInitDirsCreated, dirs))

	path := config.GetConfigFilePath()
	if _, err := os.Stat(path); err == nil && !initForce {
		ui.PrintInfo(w, fmt.Sprintf(i18n.MsgConfigExists, path))
		prompt := ui.NewPrompt(cmd.InOrStdin(), w)
		ok, err := prompt.Confirm(i18n.MsgConfigOverwrite, false)
		if err != nil {
			return err
		}
		if !ok {
			ui.PrintInfo(w, i18n.MsgSkipped)
			ui.PrintInfo(w, i18n.MsgInitNextSteps)
			return nil
		}
	}

	if err := config.GenerateDefaultConfigFile(path); err != nil {
		return err
	}
	ui.PrintSuccess(w, fmt.Sprintf(i18n.MsgConfigWritten, path))
	ui.PrintInfo(w, i18n.MsgInitNextSteps)
	return nil
}
