package strip

import (
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/deepharbor/substrip/internal/graph"
	"github.com/deepharbor/substrip/internal/warnings"
)

func buildSub(t *testing.T, body string) *graph.Submarine {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(`<Submarine name="Test">` + body + `</Submarine>`); err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	sub, err := graph.Parse(doc)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return sub
}

func serialize(t *testing.T, sub *graph.Submarine) string {
	t.Helper()
	out, err := sub.Document().WriteToString()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	return out
}

func TestResetUpgradesThisTarget(t *testing.T) {
	sub := buildSub(t, `<Item ID="1" identifier="wall" maxhealth="150">
		<Upgrade identifier="increasewallhealth" level="2"><This><maxhealth value="100"/></This></Upgrade>
	</Item>`)
	result := &Result{}

	resetUpgrades(sub, result)

	wall := sub.Lookup("1")
	if value, _ := wall.Attr("maxhealth"); value != "100" {
		t.Fatalf("maxhealth = %q, want reverted 100", value)
	}
	if result.AttributesReverted != 1 || result.UpgradeRecordsRemoved != 1 {
		t.Fatalf("result = %+v, want 1 attr / 1 record", result)
	}
	if strings.Contains(serialize(t, sub), "<Upgrade") {
		t.Fatal("upgrade record still serialized")
	}
}

func TestResetUpgradesComponentTarget(t *testing.T) {
	sub := buildSub(t, `<Item ID="1" identifier="pump">
		<Powered minvoltage="1.0"/>
		<Upgrade identifier="reducepowerdrain" level="1"><Powered><minvoltage value="0.5"/></Powered></Upgrade>
	</Item>`)
	result := &Result{}

	resetUpgrades(sub, result)

	pump := sub.Lookup("1").Element()
	powered := pump.SelectElement("Powered")
	if powered == nil {
		t.Fatal("Powered component missing")
	}
	if got := powered.SelectAttrValue("minvoltage", ""); got != "0.5" {
		t.Fatalf("minvoltage = %q, want 0.5", got)
	}
	if result.AttributesReverted != 1 {
		t.Fatalf("AttributesReverted = %d, want 1", result.AttributesReverted)
	}
}

func TestResetUpgradesEmptyRecordRemoved(t *testing.T) {
	sub := buildSub(t, `<Item ID="1" identifier="wall"><Upgrade identifier="increasewallhealth" level="1"/></Item>`)
	result := &Result{}

	resetUpgrades(sub, result)

	if result.UpgradeRecordsRemoved != 1 || result.AttributesReverted != 0 {
		t.Fatalf("result = %+v, want empty record removed with nothing reverted", result)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
}

func TestResetUpgradesUnrecognizedLeftInPlace(t *testing.T) {
	sub := buildSub(t, `<Item ID="1" identifier="wall" maxhealth="150">
		<Upgrade identifier="oddball"><This><maxhealth/></This></Upgrade>
	</Item>`)
	result := &Result{}

	resetUpgrades(sub, result)

	if result.UpgradeRecordsRemoved != 0 {
		t.Fatal("unrecognized record must not be removed")
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Code != warnings.CodeUpgradeEncodingUnrecognized {
		t.Fatalf("warnings = %v, want one UPGRADE_ENCODING_UNRECOGNIZED", result.Warnings)
	}
	if !strings.Contains(serialize(t, sub), "<Upgrade") {
		t.Fatal("record disappeared from the document")
	}
	if value, _ := sub.Lookup("1").Attr("maxhealth"); value != "150" {
		t.Fatalf("maxhealth = %q, want untouched 150", value)
	}
}

func TestResetUpgradesNeverInventsAttributes(t *testing.T) {
	sub := buildSub(t, `<Item ID="1" identifier="wall">
		<Upgrade identifier="increasewallhealth"><This><maxhealth value="100"/></This></Upgrade>
	</Item>`)
	result := &Result{}

	resetUpgrades(sub, result)

	if _, ok := sub.Lookup("1").Attr("maxhealth"); ok {
		t.Fatal("revert invented an attribute the baseline never had")
	}
	if result.AttributesReverted != 0 || result.UpgradeRecordsRemoved != 1 {
		t.Fatalf("result = %+v, want record removed with 0 reverts", result)
	}
}

func TestRemoveStackStats(t *testing.T) {
	sub := buildSub(t, `<Item ID="1" identifier="crate">
		<Stat type="extrastacksize" value="1"/>
		<Stat type="Other" value="2"/>
	</Item>`)
	result := &Result{}

	removeStackStats(sub, result)

	if result.StackStatsRemoved != 1 {
		t.Fatalf("StackStatsRemoved = %d, want 1", result.StackStatsRemoved)
	}
	out := serialize(t, sub)
	if strings.Contains(out, "extrastacksize") {
		t.Fatal("ExtraStackSize stat still serialized")
	}
	if !strings.Contains(out, `type="Other"`) {
		t.Fatal("unrelated stat was removed")
	}
}

func TestResetUpgradesIsDeterministic(t *testing.T) {
	sub := buildSub(t, `<Item ID="1" identifier="wall" maxhealth="150">
		<Upgrade identifier="increasewallhealth"><This><maxhealth value="100"/></This></Upgrade>
	</Item>`)

	resetUpgrades(sub, &Result{})
	first := serialize(t, sub)

	second := &Result{}
	resetUpgrades(sub, second)
	if second.AttributesReverted != 0 || second.UpgradeRecordsRemoved != 0 {
		t.Fatalf("second pass found work: %+v", second)
	}
	if got := serialize(t, sub); got != first {
		t.Fatalf("second pass changed the document:\n%s\nvs\n%s", first, got)
	}
}
