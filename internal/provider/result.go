// Package provider defines the shared result types returned by external
// data providers, independent of any concrete API.
package provider

// ScanResult is the outcome of one digital-presence scan for a candidate.
type ScanResult struct {
	CandidateName string
	Findings      []Finding
}

// Finding is one item surfaced by a presence scan.
type Finding struct {
	Source   string
	URL      *string
	Severity string
	Summary  string
}
