// Package cli provides the command-line interface
package cli

import (
	"fmt"
	"os"

	"github.com/imgtools/cutout/internal/config"
	cuterrors "github.com/imgtools/cutout/internal/errors"
	"github.com/imgtools/cutout/internal/i18n"
	"github.com/imgtools/cutout/internal/runner"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"

	// Global flags
	cfgFile   string
	dryRun    bool
	verbose   bool
	quiet     bool
	inputDir  string
	outputDir string

	// Global config
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cutout",
	Short: i18n.CmdRootShort,
	Long:  i18n.CmdRootLong,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for some commands
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf(i18n.ErrMsgLoadConfig, err)
		}

		// Override with flags
		if dryRun {
			cfg.DryRun = true
		}
		if verbose {
			cfg.Verbose = true
		}
		if quiet {
			cfg.Quiet = true
			cfg.Verbose = false
		}
		if inputDir != "" {
			cfg.InputDir = inputDir
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}

		return cfg.Validate()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", i18n.FlagConfig)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, i18n.FlagDryRun)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, i18n.FlagVerbose)
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, i18n.FlagQuiet)
	rootCmd.PersistentFlags().StringVarP(&inputDir, "input", "i", "", i18n.FlagInput)
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", i18n.FlagOutput)

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(refineCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(configCmd)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: i18n.CmdVersionShort,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Cutout %s\n", Version)
		fmt.Printf("  Commit: %s\n", Commit)
		fmt.Printf("  Built:  %s\n", BuildDate)
	},
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return cfg
}

// CreateRunner creates and configures a processor runner with the current
// config. Returns an error if the processing program is missing (unless in
// DryRun mode).
func CreateRunner() (*runner.Runner, error) {
	return createRunner(cfg)
}

func createRunner(c *config.Config) (*runner.Runner, error) {
	r := runner.New(c.PythonScript, c.LogsDir)
	r.SetDryRun(c.DryRun)
	r.SetVerbose(c.Verbose)

	if !r.IsAvailable() && !c.DryRun {
		return nil, cuterrors.ErrScriptNotFound(c.PythonScript)
	}

	return r, nil
}
