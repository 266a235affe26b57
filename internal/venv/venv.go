// Package venv locates and activates Python virtual environments.
//
// Activation is modeled as a scoped resource: Activate returns a Session
// whose Environ mirrors what CPython's activate script would export, and
// Deactivate tears it down. The session never mutates the parent process
// environment; the activated environ is only handed to child processes.
package venv

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound is returned when the environment directory does not exist.
var ErrNotFound = errors.New("virtual environment not found")

// ErrNoInterpreter is returned when the directory exists but holds no
// python binary.
var ErrNoInterpreter = errors.New("no python interpreter in virtual environment")

// Env is a located, not-yet-activated virtual environment.
type Env struct {
	// Dir is the absolute path of the environment directory.
	Dir string
	// python is the interpreter path inside Dir.
	python string
}

// Detect checks that dir contains a virtual environment and returns it.
// A directory qualifies when it exists and contains an interpreter at the
// conventional location (bin/python on POSIX, Scripts/python.exe on Windows).
func Detect(dir string) (*Env, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, ErrNotFound
	}

	python := interpreterPath(abs)
	if _, err := os.Stat(python); err != nil {
		return nil, ErrNoInterpreter
	}

	return &Env{Dir: abs, python: python}, nil
}

func interpreterPath(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, "Scripts", "python.exe")
	}
	return filepath.Join(dir, "bin", "python")
}

func binDir(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, "Scripts")
	}
	return filepath.Join(dir, "bin")
}

// Python returns the interpreter path inside the environment.
func (e *Env) Python() string {
	return e.python
}

// Session is an activated virtual environment. It must be released with
// Deactivate; Deactivate is idempotent.
type Session struct {
	env         *Env
	environ     []string
	deactivated bool
	// Deactivations counts Deactivate calls that actually tore down the
	// session. Exposed for tests asserting the once-per-branch guarantee.
	Deactivations int
}

// Activate builds the activation environ from base (typically os.Environ())
// the way CPython's activate script would: VIRTUAL_ENV is set, the
// environment's bin directory is prepended to PATH, and PYTHONHOME is
// dropped.
func (e *Env) Activate(base []string) *Session {
	environ := make([]string, 0, len(base)+2)

	sawPath := false
	for _, kv := range base {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			environ = append(environ, kv)
			continue
		}
		switch {
		case strings.EqualFold(key, "PYTHONHOME"):
			// activate unsets PYTHONHOME
		case key == "PATH":
			sawPath = true
			environ = append(environ, "PATH="+binDir(e.Dir)+string(os.PathListSeparator)+val)
		case key == "VIRTUAL_ENV":
			// replaced below
		default:
			environ = append(environ, kv)
		}
	}

	if !sawPath {
		environ = append(environ, "PATH="+binDir(e.Dir))
	}
	environ = append(environ, "VIRTUAL_ENV="+e.Dir)

	return &Session{env: e, environ: environ}
}

// Environ returns the activated environment for child processes.
// Returns nil after Deactivate.
func (s *Session) Environ() []string {
	if s.deactivated {
		return nil
	}
	out := make([]string, len(s.environ))
	copy(out, s.environ)
	return out
}

// Python returns the interpreter path of the activated environment.
func (s *Session) Python() string {
	return s.env.python
}

// Dir returns the environment directory.
func (s *Session) Dir() string {
	return s.env.Dir
}

// Active reports whether the session has not been deactivated yet.
func (s *Session) Active() bool {
	return !s.deactivated
}

// Deactivate releases the session. Safe to call more than once; only the
// first call counts as a teardown.
func (s *Session) Deactivate() {
	if s.deactivated {
		return
	}
	s.deactivated = true
	s.environ = nil
	s.Deactivations++
}
