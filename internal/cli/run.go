package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/imgtools/cutout/internal/config"
	cuterrors "github.com/imgtools/cutout/internal/errors"
	"github.com/imgtools/cutout/internal/i18n"
	"github.com/imgtools/cutout/internal/imaging"
	"github.com/imgtools/cutout/internal/runner"
	"github.com/imgtools/cutout/internal/ui"
	"github.com/imgtools/cutout/internal/venv"
	"github.com/spf13/cobra"
)

var runChoice string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: i18n.CmdRunShort,
	Long:  i18n.CmdRunLong,
	RunE:  runLauncher,
}

func init() {
	runCmd.Flags().StringVar(&runChoice, "choice", "", i18n.FlagChoice)
}

func runLauncher(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		cancel()
	}()

	_, err := dispatch(ctx, cfg, os.Stdin, os.Stdout, runChoice)
	return err
}

// dispatch drives the launcher flow: verify the environment, show the
// two-option menu, and run the chosen branch. The activated session is
// torn down on every branch; it is returned so callers can observe the
// teardown. A nil session means the environment check failed.
func dispatch(ctx context.Context, c *config.Config, in io.Reader, w io.Writer, choice string) (*venv.Session, error) {
	env, err := venv.Detect(c.VenvDir)
	if err != nil {
		fatal := cuterrors.ErrVenvNotFound(c.VenvDir)
		if errors.Is(err, venv.ErrNoInterpreter) {
			fatal = cuterrors.ErrNoInterpreter(c.VenvDir)
		}
		ui.PrintError(w, fatal.Message)
		return nil, fatal
	}

	session := env.Activate(os.Environ())
	defer func() {
		session.Deactivate()
		if c.Verbose {
			ui.PrintInfo(w, i18n.MsgVenvDeactivated)
		}
	}()

	if c.Verbose {
		ui.PrintInfo(w, fmt.Sprintf(i18n.MsgVenvActivated, session.Dir()))
	}

	ui.PrintHeader(w, i18n.MsgMenuTitle)
	ui.PrintInfo(w, i18n.MsgMenuOptionRun)
	ui.PrintInfo(w, i18n.MsgMenuOptionExit)

	if choice == "" {
		prompt := ui.NewPrompt(in, w)
		choice, err = prompt.Ask(i18n.MsgMenuPrompt)
		if err != nil {
			return session, err
		}
	}

	switch choice {
	case "1":
		return session, launchProcessor(ctx, c, in, w, session)
	case "2":
		ui.PrintInfo(w, i18n.MsgExiting)
		return session, nil
	default:
		// No retry loop: anything outside {1,2} ends the session
		ui.PrintWarning(w, fmt.Sprintf(i18n.MsgInvalidChoice, choice))
		return session, nil
	}
}

// launchProcessor runs the external processing program exactly once
// inside the activated session.
func launchProcessor(ctx context.Context, c *config.Config, in io.Reader, w io.Writer, session *venv.Session) error {
	found := 0
	if images, err := imaging.ListImages(c.InputDir); err == nil {
		found = len(images)
		if found == 0 {
			ui.PrintWarning(w, fmt.Sprintf(i18n.MsgNoImages, c.InputDir))
			ui.PrintInfo(w, fmt.Sprintf(i18n.MsgPlaceImagesHint, c.InputDir))
			ui.PrintInfo(w, fmt.Sprintf(i18n.MsgSupportedFormats, imaging.FormatList()))
		} else if !c.Quiet {
			ui.PrintInfo(w, fmt.Sprintf(i18n.MsgFoundImages, found))
		}
	}

	r, err := createRunner(c)
	if err != nil {
		return err
	}
	r.SetWriter(w)

	if !c.Quiet {
		ui.PrintInfo(w, fmt.Sprintf(i18n.MsgLaunching, c.PythonScript))
	}

	// The processor's own output is only echoed in verbose mode, so give
	// the operator a liveness signal while inference runs.
	var spin *ui.Spinner
	if !c.Verbose && !c.Quiet {
		spin = ui.NewSpinner(i18n.MsgProcessing, w)
		spin.Start()
	}

	start := time.Now()
	result, err := r.Run(ctx, session,
		runner.WithTimeout(time.Duration(c.Timeout)*time.Second),
		runner.WithWorkingDir(c.ProjectRoot),
		runner.WithStdin(in),
		runner.WithEnv(processorEnv(c)...),
	)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	processed := countOutputs(c.OutputDir, start)
	failed := found - processed
	if failed < 0 {
		failed = 0
	}

	summary := &imaging.Summary{
		StartedAt: start,
		Duration:  result.Duration,
		Processed: processed,
		Failed:    failed,
		ExitCode:  result.ExitCode,
		LogPath:   result.LogPath,
	}
	if err := summary.Write(c.LogsDir); err != nil && c.Verbose {
		ui.PrintWarning(w, err.Error())
	}

	if result.Success {
		if !c.Quiet {
			ui.PrintSuccess(w, fmt.Sprintf(i18n.MsgProcessorDone, result.Duration.Round(100*time.Millisecond)))
			box := ui.NewSummaryBox()
			box.SetCounts(processed, failed)
			box.SetDuration(result.Duration)
			box.SetOutputDir(c.OutputDir)
			box.Render(w)
		}
	} else {
		// The processor's own exit status is surfaced but not treated as
		// a launcher failure. A run that never produced an exit status
		// (interpreter refused to start, timeout kill) reports the error
		// itself instead of a meaningless status 0.
		msg := fmt.Sprintf(i18n.MsgProcessorFailed, result.ExitCode)
		if result.ExitCode == 0 && result.Error != "" {
			msg = fmt.Sprintf(i18n.MsgProcessorError, result.Error)
		}
		ui.PrintWarning(w, msg)
	}

	if result.LogPath != "" && c.Verbose {
		ui.PrintInfo(w, ui.StyleMuted.Render(fmt.Sprintf(i18n.MsgLogPath, result.LogPath)))
	}

	return nil
}

// processorEnv translates the configuration into the CUTOUT_* variables
// the processing program reads. The program itself is always invoked
// with no arguments.
func processorEnv(c *config.Config) []string {
	return []string{
		"CUTOUT_MODEL=" + c.Model,
		"CUTOUT_ALPHA_MATTING=" + strconv.FormatBool(c.AlphaMatting),
		"CUTOUT_ONLY_MASK=" + strconv.FormatBool(c.OnlyMask),
		"CUTOUT_INPUT_DIR=" + c.InputDir,
		"CUTOUT_OUTPUT_DIR=" + c.OutputDir,
	}
}

// countOutputs counts the PNGs in dir written at or after since.
func countOutputs(dir string, since time.Time) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	count := 0
	for _, e := range entries {
		if e.IsDir() || strings.ToLower(filepath.Ext(e.Name())) != ".png" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(since.Truncate(time.Second)) {
			count++
		}
	}
	return count
}
