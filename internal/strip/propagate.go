package strip

import (
	"fmt"
	"strings"

	"github.com/deepharbor/substrip/internal/graph"
	"github.com/deepharbor/substrip/internal/warnings"
)

// propagate closes the keep set over the structural edges until nothing
// changes:
//
//   - containment-up: a kept entity keeps its whole container chain,
//   - circuitbox-link: a kept circuit box keeps every linked component,
//   - wire-link: a wire endpoint classified Remove is kept when the wire is
//     attached to a kept fixture on the other side.
//
// The closure is monotonic over a finite node set, so it terminates; the
// step counter bounds it anyway in case a malformed document produces a
// link cycle the bookkeeping misses.
func propagate(sub *graph.Submarine, keep KeepSet, result *Result) {
	entities := sub.Entities()
	wireEndpoints := endpointIndex(sub, entities)
	containedBy := containmentIndex(sub, entities)

	queue := make([]*graph.Entity, 0, len(entities))
	for _, entity := range entities {
		if keep[entity] == Keep {
			queue = append(queue, entity)
		}
	}

	maxSteps := len(entities) * 8
	for steps := 0; len(queue) > 0 && steps < maxSteps; steps++ {
		entity := queue[0]
		queue = queue[1:]

		// Containment-up. Containment is the "contained" slot reference, or
		// literal item nesting; an item's own component elements never pull
		// their parent along.
		if container := containedBy[entity]; container != nil && keep.promote(container) {
			queue = append(queue, container)
		}
		if parent := entity.Parent; parent != nil && isItemElement(entity) && keep.promote(parent) {
			queue = append(queue, parent)
		}

		switch entity.Kind {
		case graph.KindCircuitBox:
			// Every linked component travels with the box.
			for _, link := range entity.Links {
				if link.Kind != graph.LinkContained {
					continue
				}
				if target := sub.Lookup(link.TargetID); target != nil && keep.promote(target) {
					queue = append(queue, target)
				}
			}
		case graph.KindWire:
			for _, target := range promoteWireEndpoints(sub, keep, entity, wireEndpoints[entity], result) {
				queue = append(queue, target)
			}
		}
	}
}

// containmentIndex inverts the LinkContained references: each stored entity
// maps to the container whose slot list names it.
func containmentIndex(sub *graph.Submarine, entities []*graph.Entity) map[*graph.Entity]*graph.Entity {
	index := make(map[*graph.Entity]*graph.Entity)
	for _, entity := range entities {
		for _, link := range entity.Links {
			if link.Kind != graph.LinkContained {
				continue
			}
			if target := sub.Lookup(link.TargetID); target != nil {
				index[target] = entity
			}
		}
	}
	return index
}

func isItemElement(entity *graph.Entity) bool {
	return strings.EqualFold(entity.Element().Tag, "Item")
}

// endpointIndex inverts the LinkEndpoint references: connection panels name
// the wire they hold, so the wire's endpoints are the entities referencing it.
func endpointIndex(sub *graph.Submarine, entities []*graph.Entity) map[*graph.Entity][]*graph.Entity {
	index := make(map[*graph.Entity][]*graph.Entity)
	for _, entity := range entities {
		for _, link := range entity.Links {
			if link.Kind != graph.LinkEndpoint {
				continue
			}
			if wire := sub.Lookup(link.TargetID); wire != nil {
				index[wire] = append(index[wire], entity)
			}
		}
	}
	return index
}

// promoteWireEndpoints applies the wire-link rule to one kept wire. An
// endpoint currently classified Remove is promoted only when the wire also
// attaches to a kept fixture; a wire strung between two removable loose
// items promotes neither, the wire stays and the items keep their own
// verdicts. Well-formed documents never produce that shape, so it is
// surfaced as a warning rather than guessed at.
func promoteWireEndpoints(sub *graph.Submarine, keep KeepSet, wire *graph.Entity, endpoints []*graph.Entity, result *Result) []*graph.Entity {
	hasKeptFixture := false
	for _, endpoint := range endpoints {
		if isFixture(endpoint) && keep[endpoint] == Keep {
			hasKeptFixture = true
			break
		}
	}

	var promoted []*graph.Entity
	unresolved := 0
	for _, endpoint := range endpoints {
		if keep[endpoint] != Remove {
			continue
		}
		if hasKeptFixture {
			if keep.promote(endpoint) {
				promoted = append(promoted, endpoint)
			}
		} else {
			unresolved++
		}
	}
	if unresolved > 0 && !wireWarned(result, wire) {
		result.warn(warnings.Warning{
			Code:    warnings.CodeWireEndpointsUnresolved,
			Subject: wireSubject(wire),
			Message: fmt.Sprintf("wire %s connects only removable items; the wire is kept, the items follow their own classification", wireSubject(wire)),
		})
	}
	return promoted
}

func isFixture(entity *graph.Entity) bool {
	switch entity.Kind {
	case graph.KindDevice, graph.KindCircuitBox, graph.KindStructural:
		return true
	case graph.KindContainer:
		return entity.Attached || !entity.Movable
	default:
		return false
	}
}

func wireSubject(wire *graph.Entity) string {
	if wire.ID != "" {
		return wire.ID
	}
	return wire.Identifier
}

// wireWarned reports whether this wire already has an unresolved-endpoints
// warning, so repeated propagation rounds do not duplicate it.
func wireWarned(result *Result, wire *graph.Entity) bool {
	subject := wireSubject(wire)
	for _, w := range result.Warnings {
		if w.Code == warnings.CodeWireEndpointsUnresolved && w.Subject == subject {
			return true
		}
	}
	return false
}
