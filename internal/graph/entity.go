// Package graph builds a typed entity graph from a submarine document and
// flattens it back. Entities keep a handle to their source XML element, so
// attributes, comments and formatting the model does not understand pass
// through serialization untouched.
package graph

import (
	"strings"

	"github.com/beevik/etree"
)

// Kind is the closed set of entity kinds the stripping rules dispatch on.
type Kind int

const (
	// KindStructural covers hulls, gaps, waypoints, component sub-elements
	// and any other element the item rules never touch.
	KindStructural Kind = iota
	// KindItem is a loose or stored item, the only removal candidate.
	KindItem
	// KindWire is an item carrying a Wire component with routed nodes.
	KindWire
	// KindCircuitBox is an attached circuit box whose contents are wired logic.
	KindCircuitBox
	// KindContainer is an item holding other items (cabinets, crates, racks).
	KindContainer
	// KindDevice is any other item attached to the hull.
	KindDevice
	// KindUpgradeRecord is an applied <Upgrade> overlay.
	KindUpgradeRecord
)

func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindWire:
		return "wire"
	case KindCircuitBox:
		return "circuitbox"
	case KindContainer:
		return "container"
	case KindDevice:
		return "device"
	case KindUpgradeRecord:
		return "upgrade"
	default:
		return "structural"
	}
}

// LinkKind distinguishes the non-containment relations between entities.
type LinkKind int

const (
	// LinkContained references an item stored inside a container slot.
	LinkContained LinkKind = iota
	// LinkEndpoint references the item on the far end of a wire connection.
	LinkEndpoint
)

// Link is a weak reference to another entity by ID. Targets may be deleted
// across passes; resolution always goes through the graph index.
type Link struct {
	Kind     LinkKind
	TargetID string
}

// Entity is one node of the submarine graph.
type Entity struct {
	ID         string
	Kind       Kind
	Identifier string
	Parent     *Entity
	Children   []*Entity
	Links      []Link
	// Attached marks items bolted to the hull (a Holdable component with
	// Attached="True").
	Attached bool
	// Movable marks items carrying a behavior component, i.e. things a crew
	// member could pick up, throw, wear or grow.
	Movable bool

	tags    map[string]struct{}
	elem    *etree.Element
	removed bool
}

// Element returns the underlying XML element.
func (e *Entity) Element() *etree.Element {
	return e.elem
}

// Removed reports whether the entity has been pruned from the graph.
func (e *Entity) Removed() bool {
	return e.removed
}

// HasTag reports whether the entity's Tags attribute contains tag
// (case-insensitive token match).
func (e *Entity) HasTag(tag string) bool {
	_, ok := e.tags[strings.ToLower(tag)]
	return ok
}

// Attr returns the value of the named attribute, matching case-insensitively,
// and whether it was present. The document schema mixes casings freely
// ("Tags" vs "tags", "type" vs "Type").
func (e *Entity) Attr(name string) (string, bool) {
	return attrFold(e.elem, name)
}

// SetAttr overwrites the named attribute in place, preserving its original
// casing and position when it already exists.
func (e *Entity) SetAttr(name string, value string) {
	if key, ok := attrKeyFold(e.elem, name); ok {
		e.elem.CreateAttr(key, value)
		return
	}
	e.elem.CreateAttr(name, value)
}

// attrFold finds an attribute value by case-insensitive name.
func attrFold(elem *etree.Element, name string) (string, bool) {
	for _, attr := range elem.Attr {
		if strings.EqualFold(attr.Key, name) {
			return attr.Value, true
		}
	}
	return "", false
}

// attrKeyFold finds the real key of an attribute by case-insensitive name.
func attrKeyFold(elem *etree.Element, name string) (string, bool) {
	for _, attr := range elem.Attr {
		if strings.EqualFold(attr.Key, name) {
			return attr.Key, true
		}
	}
	return "", false
}

// splitTags tokenizes a Tags attribute on commas and whitespace.
func splitTags(raw string) map[string]struct{} {
	tags := make(map[string]struct{})
	for _, tok := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	}) {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			tags[tok] = struct{}{}
		}
	}
	return tags
}
