package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "substrip"
	// RootShort is the short description for the root command.
	RootShort = "Submarine save stripper"
	// RootLong explains what the tool does on the help screen.
	RootLong = `substrip resets submarine definition files (.sub) for a fresh campaign:
applied upgrades are rolled back and loose items are removed, while wiring,
devices and anything you exclude stay intact. Results are written to a
separate output directory; inputs are never modified.`
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// StripUse is the strip command name.
	StripUse   = "strip"
	StripShort = "Strip upgrades and loose items from submarine files"

	StripFlagInput     = "Directory scanned for .sub files"
	StripFlagOutput    = "Directory the stripped copies are written to"
	StripFlagUpgrades  = "Roll back applied upgrades (overrides config)"
	StripFlagItems     = "Remove loose and stored items (overrides config)"
	StripFlagDryRun    = "Show per-file diffs without writing any output"
	StripFlagDiffLines = "Maximum diff lines shown per file in dry-run mode"

	StripPromptUpgrades = "Strip submarines' upgrades?"
	StripPromptItems    = "Strip submarines' items?"

	StripNothingToDo           = "Both stripping options are disabled; no output files will be written."
	StripTogglesNonInteractive = "stripping options are not set; pass --upgrades/--items or set them in substrip.toml (no terminal available to ask)"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check that the input directory and configuration are usable"

	DoctorHealthCheckFmt  = "Checking %s\n\n"
	DoctorResultLineFmt   = "%s %s: %s\n"
	DoctorStatusOKLabel   = "[OK]  "
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	DoctorCheckNameInput  = "Input"
	DoctorCheckNameConfig = "Config"
	DoctorCheckNameFiles  = "Files"

	DoctorInputDirMissingFmt       = "input directory %s does not exist"
	DoctorInputDirMissingRecommend = "Create the directory and drop your .sub files in it."
	DoctorInputNotDirFmt           = "%s is not a directory"
	DoctorInputDirOKFmt            = "input directory %s exists"
	DoctorNoSubFilesFmt            = "no .sub files found in %s"
	DoctorSubFilesFoundFmt         = "%d .sub file(s) found"
	DoctorConfigOK                 = "substrip.toml parsed"
	DoctorConfigDefault            = "no substrip.toml; defaults in effect"
	DoctorConfigInvalidFmt         = "substrip.toml is invalid: %v"
	DoctorConfigInvalidRecommend   = "Fix the reported keys; run with --help for the accepted settings."
	DoctorFileOKFmt                = "%s parses into a submarine graph"
	DoctorFileBadFmt               = "%s: %v"
	DoctorFileBadRecommend         = "The file is not a submarine document; it will be skipped during stripping."

	DoctorFailureSummary = "Doctor found problems."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "Everything looks good."
)
