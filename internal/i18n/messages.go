// Package i18n centralizes user-facing strings for the cutout CLI.
// All user-facing strings are defined here for future localization.
package i18n

// Common messages
const (
	// General
	MsgSuccess   = "Success"
	MsgFailed    = "Failed"
	MsgCompleted = "Completed"
	MsgCancelled = "Cancelled"
	MsgSkipped   = "Skipped"
	MsgNoData    = "Nothing to show"

	// Input prompts
	MsgTextinputPlaceholder = "Type here..."
	MsgTextinputSubmitHint  = "(Enter to confirm, Esc/Ctrl+C to cancel)"
	MsgSelectRange          = "Select (1-%d): "
	MsgInvalidSelection     = "invalid selection: %s"
)

// Command descriptions
const (
	// Root command
	CmdRootShort = "Remove image backgrounds in batch"
	CmdRootLong  = `Cutout - batch background removal for the images in your input folder

The heavy lifting (segmentation model inference) is done by the Python
processing program running inside a local virtual environment. Cutout
drives it: it verifies the environment, scans the input folder, launches
the processor, and tightens the transparency of the resulting PNGs.

Typical session:
  cutout init      # create input/, output/ and a default config
  cutout run       # process everything in input/
  cutout refine    # clean up transparency on the processed PNGs`

	// Version command
	CmdVersionShort = "Show version information"

	// Run command
	CmdRunShort = "Launch the background-removal processor"
	CmdRunLong  = `Verify the virtual environment, then present the processing menu.

Choice 1 runs the external processing program against the input folder;
choice 2 exits. Any other input is rejected without re-prompting.

Examples:
  cutout run
  cutout run --choice 1      # skip the menu
  cutout run --dry-run`

	// Init command
	CmdInitShort = "Create the folder layout and a default config file"
	CmdInitLong  = `Create the input, output and log folders, and write a default
.cutout.yaml config file if one does not exist yet.

Examples:
  cutout init
  cutout init --force   # overwrite an existing config file`

	// Status command
	CmdStatusShort = "List images waiting in the input folder"
	CmdStatusLong  = `Scan the input folder and list the images that would be processed,
along with the summary of the most recent run when one exists.

Examples:
  cutout status
  cutout status --last   # only show the last run summary`

	// Refine command
	CmdRefineShort = "Re-run the transparency cleanup on processed images"
	CmdRefineLong  = `Apply the transparency cleanup pass to the PNGs in the output folder:
near-white pixels become fully transparent, faint alpha is zeroed, and
bright semi-transparent edge fringes are removed. Optionally downscale
to a maximum dimension.

Examples:
  cutout refine
  cutout refine --max-size 1024`

	// Clean command
	CmdCleanShort = "Remove processed images and run logs"
	CmdCleanLong  = `Remove everything in the output folder and all run logs.

Examples:
  cutout clean
  cutout clean --force   # do not ask for confirmation`

	// Config command
	CmdConfigShort = "Manage configuration"
	CmdConfigLong  = `Show or manage the cutout configuration.

Examples:
  cutout config           # show the effective configuration
  cutout config init      # write a default config file
  cutout config path      # print the config file path`
	CmdConfigShowShort  = "Show the effective configuration"
	CmdConfigInitShort  = "Write a default config file"
	CmdConfigPathShort  = "Print the config file path"
	CmdConfigModelShort = "Pick the segmentation model and save it"

	// Completion command
	CmdCompletionShort = "Generate shell completion scripts"
)

// Flag descriptions
const (
	FlagConfig  = "config file (default is .cutout.yaml)"
	FlagDryRun  = "show what would run without launching the processor"
	FlagVerbose = "verbose output"
	FlagQuiet   = "suppress non-essential output"
	FlagInput   = "input folder to scan for images"
	FlagOutput  = "output folder for processed images"
	FlagChoice  = "menu choice to apply without prompting (1 or 2)"
	FlagForce   = "do not ask for confirmation"
	FlagMaxSize = "downscale so the longest side is at most this many pixels (0 = keep size)"
	FlagLast    = "only show the summary of the last run"
)

// Run flow messages
const (
	MsgMenuTitle       = "Background Removal"
	MsgMenuOptionRun   = "1) Remove backgrounds from images in the input folder"
	MsgMenuOptionExit  = "2) Exit"
	MsgMenuPrompt      = "Enter your choice (1 or 2)"
	MsgExiting         = "Exiting."
	MsgInvalidChoice   = "Invalid choice: %s"
	MsgVenvActivated   = "Virtual environment activated: %s"
	MsgVenvDeactivated = "Virtual environment deactivated"
	MsgLaunching       = "Launching processor: %s"
	MsgProcessing      = "Processing images..."
	MsgDryRunSkip      = "[DRY RUN] processor launch skipped"
	MsgProcessorDone   = "Processor finished in %s"
	MsgProcessorFailed = "Processor exited with status %d"
	MsgProcessorError  = "Processor failed: %s"
	MsgLogPath         = "Log: %s"
)

// Status and scan messages
const (
	MsgNoImages         = "No images found in %q"
	MsgPlaceImagesHint  = "Place your images in %q and run again."
	MsgSupportedFormats = "Supported formats: %s"
	MsgFoundImages      = "Found %d image(s) to process"
	MsgNoLastRun        = "No previous run recorded"
	MsgLastRunSummary   = "Last run: %d processed, %d failed (%s)"
)

// Refine messages
const (
	MsgRefining        = "Refining"
	MsgRefineSummary   = "Refined %d image(s), %d failed"
	MsgNothingToRefine = "No PNGs found in %q"
)

// Clean messages
const (
	MsgCleanWarning   = "About to remove:"
	MsgCleanConfirm   = "Remove all processed images and logs?"
	MsgCleanDone      = "Removed processed images and logs"
	MsgNothingToClean = "Nothing to clean"
)

// Init messages
const (
	MsgInitDirsCreated = "Created folders: %s"
	MsgConfigExists    = "Config file already exists: %s"
	MsgConfigOverwrite = "Overwrite it?"
	MsgConfigWritten   = "Wrote config file: %s"
	MsgSelectModel     = "Which model should the processor use?"
	MsgModelSaved      = "Model set to %s in %s"
	MsgInitNextSteps   = "Next: drop images into the input folder and run `cutout run`"
)

// Error operations
const (
	ErrOpVenv   = "venv"
	ErrOpRunner = "runner"
	ErrOpFile   = "file"
	ErrOpScan   = "scan"
	ErrOpImage  = "image"
	ErrOpConfig = "config"
)

// Error messages
const (
	ErrMsgVenvNotFound   = "virtual environment not found at %s (create it with `python -m venv %s`)"
	ErrMsgNoInterpreter  = "no python interpreter in %s"
	ErrMsgScriptNotFound = "processing program not found: %s"
	ErrMsgFileNotFound   = "file not found: %s"
	ErrMsgNoImages       = "no images to process in %s"
	ErrMsgProcessFailed  = "processing program failed"
	ErrMsgDecodeImage    = "cannot decode %s"
	ErrMsgLoadConfig     = "failed to load configuration: %w"
)

// UI section titles
const (
	UIStatus  = "Input Folder"
	UISummary = "Processing Summary"
	UIConfig  = "Configuration"
)
