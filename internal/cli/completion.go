package cli

import (
	"os"

	"github.com/imgtools/cutout/internal/i18n"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: i18n.CmdCompletionShort,
	Long: `Generate a completion script for the given shell.

Bash:
  # Linux
  cutout completion bash > /etc/bash_completion.d/cutout

  # macOS
  cutout completion bash > $(brew --prefix)/etc/bash_completion.d/cutout

Zsh:
  # Enable shell completion first if it is not already:
  echo "autoload -U compinit; compinit" >> ~/.zshrc

  cutout completion zsh > "${fpath[1]}/_cutout"

Fish:
  cutout completion fish > ~/.config/fish/completions/cutout.fish

PowerShell:
  cutout completion powershell > cutout.ps1
  # Then source the file from your PowerShell profile`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
