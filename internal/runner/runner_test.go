package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/imgtools/cutout/internal/venv"
)

// fakeVenv builds a venv whose "python" is a shell script with the given
// body, so runs exercise the real exec path without a Python install.
func fakeVenv(t *testing.T, body string) *venv.Session {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-stub interpreter requires a POSIX shell")
	}

	dir := filepath.Join(t.TempDir(), ".venv")
	bin := filepath.Join(dir, "bin")
	if err := os.MkdirAll(bin, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(filepath.Join(bin, "python"), []byte(script), 0755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	env, err := venv.Detect(dir)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	return env.Activate(os.Environ())
}

func TestIsAvailable(t *testing.T) {
	tmp := t.TempDir()
	script := filepath.Join(tmp, "process.py")

	r := New(script, "")
	if r.IsAvailable() {
		t.Error("IsAvailable() = true for a missing script")
	}

	if err := os.WriteFile(script, []byte("print('hi')\n"), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if !r.IsAvailable() {
		t.Error("IsAvailable() = false for an existing script")
	}

	r2 := New(tmp, "")
	if r2.IsAvailable() {
		t.Error("IsAvailable() = true for a directory")
	}
}

func TestRun_DryRun(t *testing.T) {
	session := fakeVenv(t, "echo should-not-run; exit 7")
	defer session.Deactivate()

	var buf bytes.Buffer
	r := New("/nonexistent/process.py", "")
	r.SetWriter(&buf)
	r.SetDryRun(true)

	result, err := r.Run(context.Background(), session)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.Success {
		t.Error("dry run should report success")
	}
	if !strings.Contains(buf.String(), "[DRY RUN]") {
		t.Errorf("dry run should announce itself, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "should-not-run") {
		t.Error("dry run must not launch the processor")
	}
}

func TestRun_Success(t *testing.T) {
	session := fakeVenv(t, `echo "processing $1"`)
	defer session.Deactivate()

	tmp := t.TempDir()
	logDir := filepath.Join(tmp, "logs")

	r := New("/fake/process.py", logDir)
	result, err := r.Run(context.Background(), session, WithTimeout(10*time.Second))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.Success {
		t.Errorf("Run() success = false, output %q error %q", result.Output, result.Error)
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if !strings.Contains(result.Output, "processing /fake/process.py") {
		t.Errorf("the script path must be the only argument, output %q", result.Output)
	}
	if result.LogPath == "" {
		t.Fatal("LogPath should be set when a log dir is configured")
	}

	data, err := os.ReadFile(result.LogPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "processing /fake/process.py") {
		t.Error("processor output should land in the log file")
	}
}

func TestRun_ExitCodePropagates(t *testing.T) {
	session := fakeVenv(t, "exit 3")
	defer session.Deactivate()

	r := New("/fake/process.py", "")
	result, err := r.Run(context.Background(), session)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Success {
		t.Error("Run() success = true for a failing processor")
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
}

func TestRun_EnvPropagates(t *testing.T) {
	session := fakeVenv(t, `echo "venv=$VIRTUAL_ENV model=$CUTOUT_MODEL"`)
	defer session.Deactivate()

	r := New("/fake/process.py", "")
	result, err := r.Run(context.Background(), session, WithEnv("CUTOUT_MODEL=u2netp"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(result.Output, "venv="+session.Dir()) {
		t.Errorf("VIRTUAL_ENV should reach the processor, output %q", result.Output)
	}
	if !strings.Contains(result.Output, "model=u2netp") {
		t.Errorf("extra env should reach the processor, output %q", result.Output)
	}
}

func TestRun_Timeout(t *testing.T) {
	session := fakeVenv(t, "sleep 5")
	defer session.Deactivate()

	r := New("/fake/process.py", "")
	start := time.Now()
	result, err := r.Run(context.Background(), session, WithTimeout(200*time.Millisecond))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Success {
		t.Error("a timed-out run should not report success")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("timeout did not kick in, elapsed %s", elapsed)
	}
}
