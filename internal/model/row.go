// Package model defines the data types shared across the import pipeline.
package model

// RawRow is one row of the source CSV, immutable after ingestion.
// Founded holds the storage-format date (YYYY-MM-DD) or "" when the source
// column was empty. Revenue holds the raw currency string (e.g. "$1,234.56").
type RawRow struct {
	Company string `json:"company"`
	Name    string `json:"name"`
	Emails  string `json:"emails"`
	Phones  string `json:"phones"`
	Founded string `json:"founded,omitempty"`
	Revenue string `json:"revenue,omitempty"`
	State   string `json:"state,omitempty"`
}

// Valid reports whether the row carries enough data to become a contact:
// at least one of name, emails, or phones is non-empty.
func (r RawRow) Valid() bool {
	return r.Name != "" || r.Emails != "" || r.Phones != ""
}

// ReportRow is one line of the regional rollup report.
type ReportRow struct {
	State   string  `json:"state"`
	Leads   int     `json:"leads"`
	TopLead string  `json:"top_lead"`
	Total   float64 `json:"total"`
	Median  float64 `json:"median"`
}
