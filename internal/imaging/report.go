package imaging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/imgtools/cutout/internal/jsonutil"
)

// summaryFile is the name of the last-run summary inside the logs dir.
const summaryFile = "last-run.json"

// Summary records the outcome of one processor run.
type Summary struct {
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
	Processed int           `json:"processed"`
	Failed    int           `json:"failed"`
	ExitCode  int           `json:"exit_code"`
	LogPath   string        `json:"log_path,omitempty"`
}

// Write stores the summary under the logs directory, replacing any
// previous one.
func (s *Summary) Write(logsDir string) error {
	if err := os.MkdirAll(logsDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(logsDir, summaryFile), data, 0600)
}

// LastRun reads back the most recent summary. The read is tolerant:
// summaries written by older versions with missing fields still load.
// Returns ok=false when no summary exists.
func LastRun(logsDir string) (Summary, bool) {
	data, err := os.ReadFile(filepath.Join(logsDir, summaryFile))
	if err != nil {
		return Summary{}, false
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Summary{}, false
	}

	s := Summary{
		Processed: jsonutil.GetInt(raw, "processed"),
		Failed:    jsonutil.GetInt(raw, "failed"),
		ExitCode:  jsonutil.GetInt(raw, "exit_code"),
		LogPath:   jsonutil.GetString(raw, "log_path"),
		Duration:  time.Duration(jsonutil.GetInt(raw, "duration_ns")),
	}
	if ts := jsonutil.GetString(raw, "started_at"); ts != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			s.StartedAt = parsed
		}
	}
	return s, true
}
