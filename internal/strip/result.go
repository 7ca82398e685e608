package strip

import "github.com/deepharbor/substrip/internal/warnings"

// Result reports what a transform run did to one document, for the caller
// to summarize. All findings are non-fatal; fatal conditions surface as
// errors instead.
type Result struct {
	// AttributesReverted counts upgrade stat values written back to baseline.
	AttributesReverted int
	// UpgradeRecordsRemoved counts deleted <Upgrade> overlays.
	UpgradeRecordsRemoved int
	// StackStatsRemoved counts deleted ExtraStackSize stat records.
	StackStatsRemoved int
	// ItemsRemoved counts stripped item entities.
	ItemsRemoved int
	// ItemsKept counts item entities surviving the strip.
	ItemsKept int
	// WiresRepaired counts wires deleted because an endpoint was stripped.
	WiresRepaired int

	Warnings []warnings.Warning
}

func (r *Result) warn(w warnings.Warning) {
	r.Warnings = append(r.Warnings, w)
}
