package strip

import (
	"github.com/deepharbor/substrip/internal/config"
	"github.com/deepharbor/substrip/internal/graph"
)

// State is an entity's classification in the keep set.
type State int

const (
	// Undetermined entities are resolved by propagation; whatever is still
	// undetermined after closure is removed.
	Undetermined State = iota
	// Keep survives pruning. Keep is monotonic: classification never
	// downgrades a kept entity.
	Keep
	// Remove is a stripping candidate until propagation says otherwise.
	Remove
)

// KeepSet is the working classification state for one document.
type KeepSet map[*graph.Entity]State

// promote marks an entity Keep and reports whether that changed its state.
func (k KeepSet) promote(entity *graph.Entity) bool {
	if k[entity] == Keep {
		return false
	}
	k[entity] = Keep
	return true
}

// classify produces the initial labeling, evaluated per entity in document
// order:
//
//  1. fixtures (wires, circuit boxes, devices, structural elements) are kept,
//  2. excluded identifiers are kept,
//  3. a placed container is kept but its contents are judged on their own,
//  4. any other movable item is a removal candidate.
func classify(sub *graph.Submarine, exclusions config.ExclusionSet) KeepSet {
	keep := make(KeepSet, sub.Len())
	for _, entity := range sub.Entities() {
		switch entity.Kind {
		case graph.KindWire, graph.KindCircuitBox, graph.KindDevice, graph.KindStructural, graph.KindUpgradeRecord:
			keep[entity] = Keep
		case graph.KindContainer:
			if exclusions.Contains(entity.Identifier) {
				keep[entity] = Keep
			} else if entity.Attached || !entity.Movable {
				// A placed cabinet stays; its loose contents may still go.
				keep[entity] = Keep
			} else {
				keep[entity] = Remove
			}
		case graph.KindItem:
			if exclusions.Contains(entity.Identifier) {
				keep[entity] = Keep
			} else {
				keep[entity] = Remove
			}
		default:
			keep[entity] = Undetermined
		}
	}
	return keep
}
