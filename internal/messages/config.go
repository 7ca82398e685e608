package messages

// Configuration loading and validation messages.
const (
	ConfigReadFailedFmt      = "failed to read config %s: %w"
	ConfigInvalidConfigFmt   = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "config %s contains unrecognized keys: %v."
	ConfigValidationGuidance = "See substrip.toml in the README for the accepted settings."

	ConfigInputPathEmpty      = "paths.input must not be empty"
	ConfigOutputPathEmpty     = "paths.output must not be empty"
	ConfigSameInputOutputFmt  = "paths.input and paths.output both resolve to %s; refusing to overwrite inputs"
	ConfigEmptyExclusionFmt   = "exclusions.identifiers entry %d is empty after trimming"
	ConfigDiffLinesNegative   = "strip.diff_lines must be positive when set"
)
