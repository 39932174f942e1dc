package model

import "time"

// RunStatus represents the current state of an import run.
type RunStatus string

const (
	RunStatusQueued      RunStatus = "queued"
	RunStatusPushing     RunStatus = "pushing"
	RunStatusAggregating RunStatus = "aggregating"
	RunStatusComplete    RunStatus = "complete"
	RunStatusFailed      RunStatus = "failed"
)

// Run records one execution of the full import pipeline.
type Run struct {
	ID        string     `json:"id"`
	CSVPath   string     `json:"csv_path"`
	Start     string     `json:"start"` // aggregation window start, storage format
	End       string     `json:"end"`   // aggregation window end, storage format
	Status    RunStatus  `json:"status"`
	Result    *RunResult `json:"result,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RunResult holds the final outcome of a completed run.
type RunResult struct {
	Leads      int    `json:"leads"`
	Contacts   int    `json:"contacts"`
	ReportRows int    `json:"report_rows"`
	ReportPath string `json:"report_path,omitempty"`
}
