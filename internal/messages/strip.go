package messages

// Messages emitted by the strip pipeline and batch orchestration.
const (
	SubfileReadFailedFmt  = "failed to read %s: %w"
	SubfileWriteFailedFmt = "failed to write %s: %w"
	SubfileNotXMLFmt      = "%s is neither gzip nor XML: %w"

	BatchSystemRequired    = "batch: system is required"
	BatchInputDirFmt       = "input directory %s is not usable: %w"
	BatchNoFilesFmt        = "no .sub files found in %s"
	BatchCreateOutputFmt   = "failed to create output directory %s: %w"
	BatchProcessingFmt     = "Processing %s ...\n"
	BatchFileFailedFmt     = "  %s: %v\n"
	BatchRevertedFmt       = "  reverted %d upgraded attribute(s), removed %d upgrade record(s)\n"
	BatchStackStatsFmt     = "  removed %d ExtraStackSize stat(s)\n"
	BatchItemsRemovedFmt   = "  removed %d item(s), kept %d\n"
	BatchWroteFmt          = "  wrote %s\n"
	BatchDryRunHeaderFmt   = "--- %s (dry run)\n"
	BatchDiffTruncatedFmt  = "  ... diff truncated at %d lines (raise with --diff-lines)\n"
	BatchNoChangesFmt      = "  no changes\n"
	BatchSummaryFmt        = "Done: %d file(s) processed, %d failed.\n"
	BatchAllFailed         = "all input files failed to process"

	// WizardRequiresTerminal is returned when prompts run without a TTY.
	WizardRequiresTerminal = "interactive prompts require a terminal"
	WizardCancelled        = "cancelled"
)
