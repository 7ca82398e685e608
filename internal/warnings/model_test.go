package warnings

import (
	"strings"
	"testing"
)

func TestStringDefaults(t *testing.T) {
	w := Warning{
		Code:    CodeDanglingLinkRepaired,
		Subject: "57",
		Message: "wire 57 lost an endpoint and was removed",
	}
	out := w.String()

	for _, fragment := range []string{
		"WARNING " + CodeDanglingLinkRepaired,
		"source: " + SourceDocument,
		"severity: " + SeverityWarning,
		"subject: 57",
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("String() missing %q:\n%s", fragment, out)
		}
	}
	if strings.Contains(out, "fix:") {
		t.Fatal("empty fix must not be rendered")
	}
}

func TestStringExplicitFields(t *testing.T) {
	w := Warning{
		Code:     CodeUpgradeEncodingUnrecognized,
		Subject:  "increasewallhealth",
		Message:  "upgrade record left unmodified",
		Fix:      "inspect the record by hand",
		Details:  []string{"record carries no revertable stat values"},
		Source:   SourceInternal,
		Severity: SeverityCritical,
	}
	out := w.String()

	for _, fragment := range []string{
		"source: " + SourceInternal,
		"severity: " + SeverityCritical,
		"fix: inspect the record by hand",
		"details: record carries no revertable stat values",
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("String() missing %q:\n%s", fragment, out)
		}
	}
}
