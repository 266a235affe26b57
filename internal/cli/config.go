package cli

import (
	"fmt"
	"strconv"

	"github.com/imgtools/cutout/internal/config"
	"github.com/imgtools/cutout/internal/i18n"
	"github.com/imgtools/cutout/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: i18n.CmdConfigShort,
	Long:  i18n.CmdConfigLong,
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: i18n.CmdConfigShowShort,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: i18n.CmdConfigInitShort,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigFilePath()
		if err := config.GenerateDefaultConfigFile(path); err != nil {
			return err
		}
		ui.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf(i18n.MsgConfigWritten, path))
		return nil
	},
}

var configModelCmd = &cobra.Command{
	Use:   "model",
	Short: i18n.CmdConfigModelShort,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		prompt := ui.NewPrompt(cmd.InOrStdin(), w)
		idx, err := prompt.Select(i18n.MsgSelectModel, config.KnownModels)
		if err != nil {
			return err
		}
		cfg.Model = config.KnownModels[idx]

		path := config.GetConfigFilePath()
		if err := cfg.Save(path); err != nil {
			return err
		}
		ui.PrintSuccess(w, fmt.Sprintf(i18n.MsgModelSaved, cfg.Model, path))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: i18n.CmdConfigPathShort,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configModelCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	ui.PrintHeader(w, i18n.UIConfig)

	table := ui.NewTable("Key", "Value")
	table.AddRow("python_script", cfg.PythonScript)
	table.AddRow("model", cfg.Model)
	table.AddRow("alpha_matting", strconv.FormatBool(cfg.AlphaMatting))
	table.AddRow("only_mask", strconv.FormatBool(cfg.OnlyMask))
	table.AddRow("timeout", strconv.Itoa(cfg.Timeout))
	table.AddRow("venv_dir", cfg.VenvDir)
	table.AddRow("input_dir", cfg.InputDir)
	table.AddRow("output_dir", cfg.OutputDir)
	table.AddRow("logs_dir", cfg.LogsDir)
	table.AddRow("max_size", strconv.Itoa(cfg.MaxSize))
	table.Render(w)

	if path := config.GetConfigFilePath(); path != "" {
		ui.PrintInfo(w, ui.StyleMuted.Render(path))
	}
	return nil
}
