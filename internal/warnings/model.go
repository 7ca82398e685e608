package warnings

import "fmt"

// Warning codes.
const (
	CodeUpgradeEncodingUnrecognized = "UPGRADE_ENCODING_UNRECOGNIZED"
	CodeDanglingLinkRepaired        = "DANGLING_LINK_REPAIRED"
	CodeWireEndpointsUnresolved     = "WIRE_ENDPOINTS_UNRESOLVED"
)

// Source labels where a warning originates.
const (
	SourceDocument = "document"
	SourceInternal = "internal"
)

// Severity labels whether a warning should be considered critical.
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Warning represents a non-fatal finding surfaced while processing a document.
type Warning struct {
	Code     string
	Subject  string
	Message  string
	Fix      string
	Details  []string
	Source   string
	Severity string
}

func (w Warning) String() string {
	s := "WARNING " + w.Code + ": " + w.Message + "\n"
	s += fmt.Sprintf("  source: %s\n", w.sourceOrDefault())
	s += fmt.Sprintf("  severity: %s\n", w.severityOrDefault())
	s += "  subject: " + w.Subject
	if w.Fix != "" {
		s += "\n  fix: " + w.Fix
	}
	for _, d := range w.Details {
		s += "\n  details: " + d
	}
	return s
}

func (w Warning) sourceOrDefault() string {
	if w.Source == "" {
		return SourceDocument
	}
	return w.Source
}

func (w Warning) severityOrDefault() string {
	if w.Severity == "" {
		return SeverityWarning
	}
	return w.Severity
}
