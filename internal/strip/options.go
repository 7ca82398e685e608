// Package strip implements the per-document transform passes: upgrade
// reset, item classification, keep-set propagation and pruning.
package strip

import "github.com/deepharbor/substrip/internal/config"

// Options selects which passes run on a document.
type Options struct {
	// StripUpgrades rolls back applied upgrade overlays and deletes the records.
	StripUpgrades bool
	// StripItems removes loose and stored items.
	StripItems bool
	// Exclusions lists identifiers that must survive item stripping unchanged.
	Exclusions config.ExclusionSet
}

// Enabled reports whether any pass would run.
func (o Options) Enabled() bool {
	return o.StripUpgrades || o.StripItems
}
