// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON schema for a typing result.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	SequenceType        string `json:"sequence_type,omitempty"`
	NearestSequenceType string `json:"nearest_sequence_type,omitempty"`
	Exact               bool   `json:"exact"`
	MatchedLoci         int    `json:"matched_loci"`
	NumLoci             int    `json:"num_loci"`
	Profile             string `json:"profile,omitempty"`
}
