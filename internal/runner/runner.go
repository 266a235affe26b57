// Package runner invokes the external background-removal program inside
// an activated virtual environment.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/imgtools/cutout/internal/venv"
)

// Result represents the outcome of a processor run
type Result struct {
	Success  bool
	Output   string
	Error    string
	Duration time.Duration
	ExitCode int
	LogPath  string // Path to log file when logging is enabled
}

// RunOption configures a processor run
type RunOption func(*runOptions)

type runOptions struct {
	workingDir string
	timeout    time.Duration
	extraEnv   []string
	stdin      io.Reader
}

// WithWorkingDir sets the working directory for the run
func WithWorkingDir(dir string) RunOption {
	return func(o *runOptions) {
		o.workingDir = dir
	}
}

// WithTimeout sets the timeout for the run
func WithTimeout(d time.Duration) RunOption {
	return func(o *runOptions) {
		o.timeout = d
	}
}

// WithEnv appends extra environment variables (KEY=value form)
func WithEnv(kv ...string) RunOption {
	return func(o *runOptions) {
		o.extraEnv = append(o.extraEnv, kv...)
	}
}

// WithStdin connects the processor's stdin, letting its own interactive
// prompts reach the operator.
func WithStdin(r io.Reader) RunOption {
	return func(o *runOptions) {
		o.stdin = r
	}
}

// Runner launches the processing program. The program is always invoked
// with an empty argument list; configuration travels through CUTOUT_*
// environment variables so the collaborator contract stays argv-free.
type Runner struct {
	Script  string
	LogDir  string
	DryRun  bool
	Verbose bool
	writer  io.Writer
}

// New creates a runner for the given processing program
func New(script, logDir string) *Runner {
	return &Runner{
		Script: script,
		LogDir: logDir,
		writer: os.Stdout,
	}
}

// SetWriter sets the output writer
func (r *Runner) SetWriter(w io.Writer) {
	r.writer = w
}

// SetDryRun enables/disables dry run mode
func (r *Runner) SetDryRun(dryRun bool) {
	r.DryRun = dryRun
}

// SetVerbose enables/disables verbose output
func (r *Runner) SetVerbose(verbose bool) {
	r.Verbose = verbose
}

// IsAvailable checks whether the processing program exists
func (r *Runner) IsAvailable() bool {
	info, err := os.Stat(r.Script)
	return err == nil && !info.IsDir()
}

// Run invokes the processor once inside the activated session.
func (r *Runner) Run(ctx context.Context, session *venv.Session, opts ...RunOption) (*Result, error) {
	options := &runOptions{
		timeout: 10 * time.Minute,
	}
	for _, opt := range opts {
		opt(options)
	}

	startTime := time.Now()

	logFile := r.createLogFile()
	if logFile != nil {
		defer logFile.Close()
	}

	if r.DryRun {
		r.logDryRun(logFile, session, options)
		result := &Result{
			Success:  true,
			Output:   "[DRY RUN] processor launch skipped",
			Duration: time.Since(startTime),
		}
		if logFile != nil {
			result.LogPath = logFile.Name()
		}
		return result, nil
	}

	ctx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, session.Python(), r.Script)
	cmd.Env = append(session.Environ(), options.extraEnv...)
	if options.workingDir != "" {
		cmd.Dir = options.workingDir
	}
	if options.stdin != nil {
		cmd.Stdin = options.stdin
	}

	r.logCommand(logFile, session, options)

	result, err := r.execute(cmd, logFile)
	if result != nil {
		result.Duration = time.Since(startTime)
		if logFile != nil {
			result.LogPath = logFile.Name()
		}
	}

	r.logResult(logFile, result, err)

	return result, err
}

// execute runs the command and captures combined output
func (r *Runner) execute(cmd *exec.Cmd, logFile *os.File) (*Result, error) {
	output, err := cmd.CombinedOutput()

	result := &Result{
		Output:   string(output),
		ExitCode: 0,
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		}
		result.Error = err.Error()
		result.Success = false
	} else {
		result.Success = true
	}

	if r.Verbose && r.writer != nil && len(output) > 0 {
		fmt.Fprint(r.writer, string(output))
	}

	if logFile != nil {
		logFile.WriteString(string(output))
	}

	return result, nil
}

// createLogFile creates a log file for the run.
// Uses 0700 for the directory and 0600 for the file; logs can contain
// local paths from the operator's machine.
func (r *Runner) createLogFile() *os.File {
	if r.LogDir == "" {
		return nil
	}

	if err := os.MkdirAll(r.LogDir, 0700); err != nil {
		return nil
	}

	timestamp := time.Now().Format("20060102150405")
	filename := fmt.Sprintf("run-%s.log", timestamp)
	path := filepath.Join(r.LogDir, filename)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil
	}

	return file
}

func (r *Runner) logDryRun(logFile *os.File, session *venv.Session, options *runOptions) {
	line := fmt.Sprintf("[DRY RUN] would run: %s %s\n", session.Python(), r.Script)
	if r.writer != nil {
		fmt.Fprint(r.writer, line)
	}
	if logFile != nil {
		logFile.WriteString(line)
		for _, kv := range options.extraEnv {
			logFile.WriteString("[DRY RUN] env: " + kv + "\n")
		}
	}
}

func (r *Runner) logCommand(logFile *os.File, session *venv.Session, options *runOptions) {
	if logFile == nil {
		return
	}
	fmt.Fprintf(logFile, "=== %s ===\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(logFile, "interpreter: %s\n", session.Python())
	fmt.Fprintf(logFile, "script: %s\n", r.Script)
	if options.workingDir != "" {
		fmt.Fprintf(logFile, "workdir: %s\n", options.workingDir)
	}
	for _, kv := range options.extraEnv {
		fmt.Fprintf(logFile, "env: %s\n", kv)
	}
	fmt.Fprintln(logFile, "---")
}

func (r *Runner) logResult(logFile *os.File, result *Result, err error) {
	if logFile == nil || result == nil {
		return
	}
	fmt.Fprintln(logFile, "---")
	fmt.Fprintf(logFile, "success: %v\n", result.Success)
	fmt.Fprintf(logFile, "exit_code: %d\n", result.ExitCode)
	fmt.Fprintf(logFile, "duration: %s\n", result.Duration)
	if err != nil {
		fmt.Fprintf(logFile, "error: %v\n", err)
	}
}
