package strip

import (
	"testing"

	"github.com/deepharbor/substrip/internal/config"
)

func TestClassifyInitialStates(t *testing.T) {
	cases := []struct {
		name       string
		item       string
		exclusions []string
		want       State
	}{
		{
			name: "loose item is a removal candidate",
			item: `<Item ID="1" identifier="wrench"><Holdable Attached="False"/></Item>`,
			want: Remove,
		},
		{
			name:       "excluded identifier is kept",
			item:       `<Item ID="1" identifier="wrench"><Holdable Attached="False"/></Item>`,
			exclusions: []string{"Wrench"},
			want:       Keep,
		},
		{
			name: "attached device is kept",
			item: `<Item ID="1" identifier="pump"><Holdable Attached="True"/></Item>`,
			want: Keep,
		},
		{
			name: "placed cabinet is kept",
			item: `<Item ID="1" identifier="steelcabinet"><ItemContainer contained=""/></Item>`,
			want: Keep,
		},
		{
			name: "carried crate is a removal candidate",
			item: `<Item ID="1" identifier="metalcrate"><Holdable Attached="False"/><ItemContainer contained=""/></Item>`,
			want: Remove,
		},
		{
			name:       "excluded carried crate is kept",
			item:       `<Item ID="1" identifier="metalcrate"><Holdable Attached="False"/><ItemContainer contained=""/></Item>`,
			exclusions: []string{"metalcrate"},
			want:       Keep,
		},
		{
			name: "routed wire is kept",
			item: `<Item ID="1" identifier="redwire" Tags="wire"><Wire nodes="1;2"/><Holdable/></Item>`,
			want: Keep,
		},
		{
			name: "attached circuit box is kept",
			item: `<Item ID="1" identifier="circuitbox" Tags="circuitbox"><Holdable Attached="True"/><ItemContainer contained=""/></Item>`,
			want: Keep,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := buildSub(t, tc.item)
			keep := classify(sub, config.NewExclusionSet(tc.exclusions))
			if got := keep[sub.Lookup("1")]; got != tc.want {
				t.Fatalf("state = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestClassifyKeepsStructureAndRoot(t *testing.T) {
	sub := buildSub(t, `<Hull ID="7"/><Item ID="1" identifier="reactor"><Reactor/></Item>`)
	keep := classify(sub, nil)

	if keep[sub.Root] != Keep {
		t.Fatal("root must be kept")
	}
	if keep[sub.Lookup("7")] != Keep {
		t.Fatal("hull must be kept")
	}
	if keep[sub.Lookup("1")] != Keep {
		t.Fatal("non-movable installation must be kept")
	}
}

func TestKeepSetPromoteIsMonotonic(t *testing.T) {
	sub := buildSub(t, `<Item ID="1" identifier="wrench"><Holdable/></Item>`)
	entity := sub.Lookup("1")
	keep := KeepSet{entity: Remove}

	if !keep.promote(entity) {
		t.Fatal("promote must report the state change")
	}
	if keep.promote(entity) {
		t.Fatal("promote must be a no-op on a kept entity")
	}
	if keep[entity] != Keep {
		t.Fatal("entity not kept after promote")
	}
}
