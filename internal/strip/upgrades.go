package strip

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/deepharbor/substrip/internal/graph"
	"github.com/deepharbor/substrip/internal/warnings"
)

// resetUpgrades rolls back every applied upgrade overlay: the recorded stat
// values are written back onto the upgraded entity, then the record is
// deleted. Records with an unrecognized encoding are left in place and
// surfaced as warnings.
func resetUpgrades(sub *graph.Submarine, result *Result) {
	for _, entity := range sub.Entities() {
		if entity.Kind != graph.KindUpgradeRecord {
			continue
		}
		parent := entity.Parent
		if parent == nil {
			result.warn(unrecognizedUpgrade(entity, "record has no parent entity"))
			continue
		}

		reverted, recognized := revertUpgrade(entity.Element(), parent.Element())
		if !recognized {
			result.warn(unrecognizedUpgrade(entity, "record carries no revertable stat values"))
			continue
		}
		result.AttributesReverted += reverted
		sub.Remove(entity)
		result.UpgradeRecordsRemoved++
	}
}

// revertUpgrade writes an upgrade record's stored baseline values back onto
// the parent. Each child of the record names a component: the reserved tag
// "This" targets the parent element itself, any other tag targets matching
// component children. Attribute names match case-insensitively.
//
// Returns the number of attributes reverted and whether the record's
// encoding was recognized. An empty record (no component children) is
// recognized: there is nothing to revert, the record is just deleted.
func revertUpgrade(record *etree.Element, parent *etree.Element) (int, bool) {
	components := record.ChildElements()
	if len(components) == 0 {
		return 0, true
	}

	reverted := 0
	sawValue := false
	for _, component := range components {
		var targets []*etree.Element
		if strings.EqualFold(component.Tag, "This") {
			targets = []*etree.Element{parent}
		} else {
			for _, child := range parent.ChildElements() {
				if child.Tag == component.Tag {
					targets = append(targets, child)
				}
			}
		}

		for _, stat := range component.ChildElements() {
			value := stat.SelectAttrValue("value", "")
			if value == "" && stat.SelectAttr("value") == nil {
				continue
			}
			sawValue = true
			for _, target := range targets {
				if setAttrFold(target, stat.Tag, value) {
					reverted++
				}
			}
		}
	}
	if !sawValue {
		return 0, false
	}
	return reverted, true
}

// setAttrFold overwrites an existing attribute matched case-insensitively.
// Attributes the target never had are not invented; the upgrade system only
// overlays values that exist on the baseline.
func setAttrFold(elem *etree.Element, name string, value string) bool {
	for _, attr := range elem.Attr {
		if strings.EqualFold(attr.Key, name) {
			elem.CreateAttr(attr.Key, value)
			return true
		}
	}
	return false
}

// removeStackStats deletes every ExtraStackSize stat record. These encode
// permanent assistant-perk stack upgrades as container contents; they must
// go before item classification so containment cannot protect them.
func removeStackStats(sub *graph.Submarine, result *Result) {
	for _, entity := range sub.Entities() {
		elem := entity.Element()
		if !strings.EqualFold(elem.Tag, "Stat") {
			continue
		}
		statType, ok := entity.Attr("type")
		if !ok || !strings.EqualFold(statType, "ExtraStackSize") {
			continue
		}
		sub.Remove(entity)
		result.StackStatsRemoved++
	}
}

func unrecognizedUpgrade(entity *graph.Entity, detail string) warnings.Warning {
	subject := entity.Identifier
	if subject == "" {
		subject = entity.Element().Tag
	}
	return warnings.Warning{
		Code:    warnings.CodeUpgradeEncodingUnrecognized,
		Subject: subject,
		Message: fmt.Sprintf("upgrade record %q was left unmodified", subject),
		Details: []string{detail},
	}
}
