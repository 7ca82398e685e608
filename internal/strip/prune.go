package strip

import (
	"fmt"
	"strings"

	"github.com/deepharbor/substrip/internal/graph"
	"github.com/deepharbor/substrip/internal/warnings"
)

// prune deletes every entity not in the final keep set and repairs the
// references of the survivors: contained ID lists are scrubbed digit-wise
// (separators preserved, matching the game's slot encoding) and connection
// panel links to deleted targets are dropped. A wire that lost a required
// endpoint is deleted outright rather than left dangling.
//
// Returns true when a structural entity (a wire) had to be deleted; the
// caller must then re-run propagation and prune again until stable.
func prune(sub *graph.Submarine, keep KeepSet, result *Result) bool {
	refsBefore := endpointRefCount(sub)

	for _, entity := range sub.Entities() {
		if entity.Removed() || keep[entity] == Keep {
			continue
		}
		// Undetermined defaults to Remove: fail open toward stripping.
		result.ItemsRemoved += countItems(entity)
		sub.Remove(entity)
	}

	repairLinks(sub)

	changed := false
	refsAfter := endpointRefCount(sub)
	for _, wire := range sub.Entities() {
		if wire.Kind != graph.KindWire {
			continue
		}
		before := refsBefore[wire.ID]
		after := refsAfter[wire.ID]
		if before >= 1 && after < before && after < 2 {
			result.warn(danglingLink(wire))
			sub.Remove(wire)
			result.WiresRepaired++
			changed = true
		}
	}
	if changed {
		repairLinks(sub)
	}
	return changed
}

// endpointRefCount counts, per wire ID, how many live entities still hold a
// connection panel link to it.
func endpointRefCount(sub *graph.Submarine) map[string]int {
	refs := make(map[string]int)
	for _, entity := range sub.Entities() {
		for _, link := range entity.Links {
			if link.Kind == graph.LinkEndpoint {
				refs[link.TargetID]++
			}
		}
	}
	return refs
}

// repairLinks removes references to deleted entities from every survivor.
func repairLinks(sub *graph.Submarine) {
	for _, entity := range sub.Entities() {
		if len(entity.Links) == 0 {
			continue
		}
		scrubContained(sub, entity)
		scrubPanelLinks(sub, entity)

		live := entity.Links[:0]
		for _, link := range entity.Links {
			if sub.Lookup(link.TargetID) != nil {
				live = append(live, link)
			}
		}
		entity.Links = live
	}
}

// scrubContained blanks the digit runs of deleted IDs inside "contained"
// attributes while keeping the comma/semicolon slot separators intact.
func scrubContained(sub *graph.Submarine, entity *graph.Entity) {
	for _, container := range entity.Element().SelectElements("ItemContainer") {
		attr := container.SelectAttr("contained")
		if attr == nil || attr.Value == "" {
			continue
		}
		container.CreateAttr(attr.Key, cleanupContained(attr.Value, func(id string) bool {
			return sub.Lookup(id) != nil
		}))
	}
}

// scrubPanelLinks deletes <link w="..."> elements whose target is gone.
func scrubPanelLinks(sub *graph.Submarine, entity *graph.Entity) {
	for _, panel := range entity.Element().SelectElements("ConnectionPanel") {
		for _, link := range panel.FindElements(".//link") {
			w := link.SelectAttrValue("w", "")
			if w == "" || sub.Lookup(w) == nil {
				if p := link.Parent(); p != nil {
					p.RemoveChild(link)
				}
			}
		}
	}
}

// cleanupContained rewrites a contained ID list, erasing the digits of IDs
// that no longer resolve: "1,2,3" with only 3 surviving becomes ",,3".
func cleanupContained(value string, resolves func(string) bool) string {
	var out strings.Builder
	out.Grow(len(value))
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		run := value[start:end]
		if resolves(run) {
			out.WriteString(run)
		}
		start = -1
	}
	for i, r := range value {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
		out.WriteRune(r)
	}
	flush(len(value))
	return out.String()
}

// countItems counts the item elements in an entity's subtree, so removing a
// crate with nested contents reports every item it took down.
func countItems(entity *graph.Entity) int {
	n := 0
	if strings.EqualFold(entity.Element().Tag, "Item") {
		n++
	}
	for _, child := range entity.Children {
		n += countItems(child)
	}
	return n
}

func danglingLink(wire *graph.Entity) warnings.Warning {
	subject := wireSubject(wire)
	return warnings.Warning{
		Code:    warnings.CodeDanglingLinkRepaired,
		Subject: subject,
		Message: fmt.Sprintf("wire %s lost an endpoint and was removed", subject),
		Details: []string{"stripping removed an item this wire was connected to"},
	}
}
