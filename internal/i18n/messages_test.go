package i18n

import (
	"strings"
	"testing"
)

// TestMessagesNotEmpty ensures that all message constants are non-empty.
// This helps catch typos or incomplete message definitions.
func TestMessagesNotEmpty(t *testing.T) {
	messages := map[string]string{
		"MsgSuccess":       MsgSuccess,
		"MsgFailed":        MsgFailed,
		"MsgCompleted":     MsgCompleted,
		"MsgCancelled":     MsgCancelled,
		"CmdRootShort":     CmdRootShort,
		"CmdRootLong":      CmdRootLong,
		"CmdRunShort":      CmdRunShort,
		"CmdInitShort":     CmdInitShort,
		"CmdStatusShort":   CmdStatusShort,
		"CmdRefineShort":   CmdRefineShort,
		"CmdCleanShort":    CmdCleanShort,
		"CmdConfigShort":   CmdConfigShort,
		"MsgMenuTitle":     MsgMenuTitle,
		"MsgMenuOptionRun": MsgMenuOptionRun,
		"MsgMenuPrompt":    MsgMenuPrompt,
		"MsgExiting":       MsgExiting,
	}

	for name, value := range messages {
		if value == "" {
			t.Errorf("Message constant %s is empty", name)
		}
	}
}

// TestErrorMessagesNotEmpty ensures that error message constants are non-empty.
func TestErrorMessagesNotEmpty(t *testing.T) {
	messages := map[string]string{
		"ErrOpVenv":            ErrOpVenv,
		"ErrOpRunner":          ErrOpRunner,
		"ErrOpFile":            ErrOpFile,
		"ErrOpScan":            ErrOpScan,
		"ErrMsgVenvNotFound":   ErrMsgVenvNotFound,
		"ErrMsgScriptNotFound": ErrMsgScriptNotFound,
		"ErrMsgNoImages":       ErrMsgNoImages,
		"ErrMsgProcessFailed":  ErrMsgProcessFailed,
		"ErrMsgDecodeImage":    ErrMsgDecodeImage,
	}

	for name, value := range messages {
		if value == "" {
			t.Errorf("Error message constant %s is empty", name)
		}
	}
}

// TestFormatPlaceholders spot-checks the constants that are used with
// fmt verbs so a localization pass cannot silently drop them.
func TestFormatPlaceholders(t *testing.T) {
	withVerbs := map[string]string{
		"MsgInvalidChoice":   MsgInvalidChoice,
		"MsgVenvActivated":   MsgVenvActivated,
		"MsgLaunching":       MsgLaunching,
		"MsgProcessorDone":   MsgProcessorDone,
		"MsgProcessorFailed": MsgProcessorFailed,
		"MsgNoImages":        MsgNoImages,
		"MsgFoundImages":     MsgFoundImages,
		"MsgLastRunSummary":  MsgLastRunSummary,
		"ErrMsgVenvNotFound": ErrMsgVenvNotFound,
	}

	for name, value := range withVerbs {
		if !strings.Contains(value, "%") {
			t.Errorf("%s should contain a format verb, got %q", name, value)
		}
	}
}
