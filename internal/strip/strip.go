package strip

import (
	"strings"

	"github.com/deepharbor/substrip/internal/graph"
)

// Run applies the selected passes to one parsed submarine, in order:
// upgrade reset, stack-stat removal, item classification, keep-set
// propagation, pruning. Pruning a dangling wire re-triggers propagation
// until the document is stable.
//
// The graph is mutated in place; serialize it through its Document() once
// Run returns. Run never fails on document content, it only reports.
func Run(sub *graph.Submarine, opts Options) *Result {
	result := &Result{}

	if opts.StripUpgrades {
		resetUpgrades(sub, result)
		removeStackStats(sub, result)
	}

	if opts.StripItems {
		keep := classify(sub, opts.Exclusions)
		// Each extra round exists only because a wire was deleted, and
		// there are finitely many wires; the bound is a safety net.
		for round := 0; round <= sub.Len(); round++ {
			propagate(sub, keep, result)
			if !prune(sub, keep, result) {
				break
			}
		}
		result.ItemsKept = countLiveItems(sub)
	}

	return result
}

func countLiveItems(sub *graph.Submarine) int {
	n := 0
	for _, entity := range sub.Entities() {
		if strings.EqualFold(entity.Element().Tag, "Item") {
			n++
		}
	}
	return n
}
