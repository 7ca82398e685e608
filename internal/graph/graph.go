package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ErrMalformedDocument marks input that cannot be modeled as a submarine
// graph at all. It is fatal for the document but never for the batch.
var ErrMalformedDocument = errors.New("malformed submarine document")

// Behavior component tags. An item carrying one of these is freely movable
// and therefore a stripping candidate unless something protects it.
var behaviorComponents = []string{
	"Holdable",
	"Throwable",
	"Growable",
	"Pickable",
	"MeleeWeapon",
	"Wearable",
	"Projectile",
}

// Submarine is one parsed document: the entity tree plus an ID index for
// O(1) link resolution. A Submarine is private to a single transform run.
type Submarine struct {
	doc   *etree.Document
	Root  *Entity
	byID  map[string]*Entity
	order []*Entity
}

// Parse builds the entity graph from a parsed XML document. It fails with
// ErrMalformedDocument when the root submarine element is missing.
func Parse(doc *etree.Document) (*Submarine, error) {
	root := doc.Root()
	if root == nil || !strings.EqualFold(root.Tag, "Submarine") {
		return nil, fmt.Errorf("%w: root element is not <Submarine>", ErrMalformedDocument)
	}
	sub := &Submarine{
		doc:  doc,
		byID: make(map[string]*Entity),
	}
	sub.Root = sub.build(root, nil)
	return sub, nil
}

// build recursively creates entities in document order, indexing IDs and
// resolving link attributes as it goes.
func (s *Submarine) build(elem *etree.Element, parent *Entity) *Entity {
	entity := &Entity{
		Parent: parent,
		elem:   elem,
	}
	if id, ok := attrFold(elem, "ID"); ok {
		entity.ID = id
	}
	if identifier, ok := attrFold(elem, "identifier"); ok {
		entity.Identifier = identifier
	}
	rawTags, _ := attrFold(elem, "Tags")
	entity.tags = splitTags(rawTags)
	if strings.EqualFold(elem.Tag, "Item") {
		entity.Attached = hasAttachedHoldable(elem)
		entity.Movable = hasBehaviorComponent(elem)
	}
	entity.Kind = classifyKind(elem, entity)
	entity.Links = resolveLinks(elem, entity.Kind)

	// First occurrence wins; the game never reuses IDs in valid saves.
	if entity.ID != "" {
		if _, exists := s.byID[entity.ID]; !exists {
			s.byID[entity.ID] = entity
		}
	}
	s.order = append(s.order, entity)

	for _, child := range elem.ChildElements() {
		entity.Children = append(entity.Children, s.build(child, entity))
	}
	return entity
}

// classifyKind maps an element onto the closed Kind set. Order matters:
// a routed wire is also an attached holdable, and an attached circuit box
// also carries an ItemContainer.
func classifyKind(elem *etree.Element, entity *Entity) Kind {
	if strings.EqualFold(elem.Tag, "Upgrade") {
		return KindUpgradeRecord
	}
	if !strings.EqualFold(elem.Tag, "Item") {
		return KindStructural
	}

	if entity.HasTag("wire") && hasRoutedWire(elem) {
		return KindWire
	}
	if strings.EqualFold(entity.Identifier, "circuitbox") && entity.Attached {
		return KindCircuitBox
	}
	if elem.SelectElement("ItemContainer") != nil {
		return KindContainer
	}
	if entity.Attached {
		return KindDevice
	}
	if entity.Movable {
		return KindItem
	}
	// Items without behavior components cannot be picked up in game and are
	// treated as structural.
	return KindStructural
}

// hasBehaviorComponent reports whether the item carries any component that
// makes it freely movable.
func hasBehaviorComponent(elem *etree.Element) bool {
	for _, tag := range behaviorComponents {
		if elem.SelectElement(tag) != nil {
			return true
		}
	}
	return false
}

// hasAttachedHoldable reports whether the item is bolted to the hull.
func hasAttachedHoldable(elem *etree.Element) bool {
	for _, holdable := range elem.SelectElements("Holdable") {
		if attached, ok := attrFold(holdable, "Attached"); ok && strings.EqualFold(attached, "true") {
			return true
		}
	}
	return false
}

// hasRoutedWire reports whether the item carries a Wire component with
// placed nodes, i.e. it is part of the sub's wiring rather than a spool
// in a cabinet.
func hasRoutedWire(elem *etree.Element) bool {
	for _, wire := range elem.SelectElements("Wire") {
		if nodes, ok := attrFold(wire, "nodes"); ok && strings.TrimSpace(nodes) != "" {
			return true
		}
	}
	return false
}

// resolveLinks extracts weak references from the element subtree:
// ItemContainer "contained" ID lists, and <link w="..."> wire endpoints
// inside connection panels.
func resolveLinks(elem *etree.Element, kind Kind) []Link {
	if kind == KindStructural || kind == KindUpgradeRecord {
		return nil
	}
	var links []Link
	for _, container := range elem.SelectElements("ItemContainer") {
		if contained, ok := attrFold(container, "contained"); ok {
			for _, id := range digitRuns(contained) {
				links = append(links, Link{Kind: LinkContained, TargetID: id})
			}
		}
	}
	for _, panel := range elem.SelectElements("ConnectionPanel") {
		for _, link := range panel.FindElements(".//link") {
			if w, ok := attrFold(link, "w"); ok && w != "" {
				links = append(links, Link{Kind: LinkEndpoint, TargetID: w})
			}
		}
	}
	return links
}

// digitRuns extracts every maximal digit run from a separator-laden ID list
// ("12,345;6" -> 12, 345, 6).
func digitRuns(value string) []string {
	var runs []string
	start := -1
	for i, r := range value {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, value[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, value[start:])
	}
	return runs
}

// Lookup resolves an entity by ID. Pruned entities do not resolve.
func (s *Submarine) Lookup(id string) *Entity {
	entity := s.byID[id]
	if entity == nil || entity.removed {
		return nil
	}
	return entity
}

// Entities returns all live entities in document order.
func (s *Submarine) Entities() []*Entity {
	live := make([]*Entity, 0, len(s.order))
	for _, entity := range s.order {
		if !entity.removed {
			live = append(live, entity)
		}
	}
	return live
}

// Len returns the number of live entities.
func (s *Submarine) Len() int {
	n := 0
	for _, entity := range s.order {
		if !entity.removed {
			n++
		}
	}
	return n
}

// Remove prunes an entity and its subtree from the graph and from the
// underlying document, preserving the relative order of its siblings.
// The root cannot be removed.
func (s *Submarine) Remove(entity *Entity) {
	if entity == nil || entity.removed || entity == s.Root {
		return
	}
	s.markRemoved(entity)
	parent := entity.Parent
	if parent != nil {
		for i, child := range parent.Children {
			if child == entity {
				parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
				break
			}
		}
	}
	if p := entity.elem.Parent(); p != nil {
		p.RemoveChild(entity.elem)
	}
}

func (s *Submarine) markRemoved(entity *Entity) {
	entity.removed = true
	for _, child := range entity.Children {
		s.markRemoved(child)
	}
}

// Document flattens the graph back to the XML tree. Mutations were applied
// to the source elements in place, so untouched subtrees serialize exactly
// as they were read.
func (s *Submarine) Document() *etree.Document {
	return s.doc
}
