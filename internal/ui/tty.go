package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// errMsg wraps errors from the interactive prompt models for handling in Update.
type errMsg error

// promptTTY returns the underlying terminal files when both ends of the
// prompt are real TTYs. The interactive bubbletea prompts need that; any
// other reader/writer pair falls back to plain scanner input.
func promptTTY(reader io.Reader, writer io.Writer) (*os.File, *os.File, bool) {
	input, okInput := reader.(*os.File)
	output, okOutput := writer.(*os.File)
	if !okInput || !okOutput {
		return nil, nil, false
	}
	if !term.IsTerminal(int(input.Fd())) || !term.IsTerminal(int(output.Fd())) {
		return nil, nil, false
	}
	return input, output, true
}
