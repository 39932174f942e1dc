// Package aggregate computes the per-state regional rollup over companies
// founded inside an inclusive date window.
package aggregate

import (
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/lead-import/internal/model"
	"github.com/sells-group/lead-import/internal/normalize"
	"github.com/sells-group/lead-import/internal/rowstore"
)

// regionAgg accumulates running statistics for one state. Updates are
// monotonic: the total and sample list only grow, the max only increases.
type regionAgg struct {
	total   float64
	maxLead string
	maxRev  float64
	samples []float64
}

// Aggregator folds companies into per-state aggregates.
type Aggregator struct {
	rows    *rowstore.Store
	start   string // storage format, inclusive
	end     string // storage format, inclusive
	regions map[string]*regionAgg
}

// New creates an aggregator for the display-format window [start, end].
func New(rows *rowstore.Store, startDisplay, endDisplay string) (*Aggregator, error) {
	start, err := normalize.DisplayToStorage(startDisplay)
	if err != nil {
		return nil, eris.Wrap(err, "aggregate: window start")
	}
	end, err := normalize.DisplayToStorage(endDisplay)
	if err != nil {
		return nil, eris.Wrap(err, "aggregate: window end")
	}
	return &Aggregator{
		rows:    rows,
		start:   start,
		end:     end,
		regions: make(map[string]*regionAgg),
	}, nil
}

// Run folds every distinct company whose canonical row falls in the window.
func (a *Aggregator) Run() error {
	for _, company := range a.rows.Companies() {
		if err := a.fold(company); err != nil {
			return err
		}
	}
	zap.L().Info("aggregate: fold complete",
		zap.String("start", a.start),
		zap.String("end", a.end),
		zap.Int("states", len(a.regions)),
	)
	return nil
}

// fold applies one company to its region aggregate. Companies outside the
// window or without a revenue figure contribute nothing. Storage-format
// dates order lexicographically, so the window test is a string comparison.
func (a *Aggregator) fold(company string) error {
	canonical, err := a.rows.Canonical(company)
	if err != nil {
		return err
	}
	if canonical.Founded == "" || canonical.Founded < a.start || canonical.Founded > a.end {
		return nil
	}
	if canonical.Revenue == "" {
		return nil
	}

	rev, err := normalize.Currency(canonical.Revenue)
	if err != nil {
		return eris.Wrapf(err, "aggregate: company %q", company)
	}

	region, ok := a.regions[canonical.State]
	if !ok {
		region = &regionAgg{maxLead: company, maxRev: rev}
		a.regions[canonical.State] = region
	}

	region.total += rev
	region.samples = append(region.samples, rev)
	// Ties keep the earlier company: strictly greater only.
	if rev > region.maxRev {
		region.maxRev = rev
		region.maxLead = company
	}
	return nil
}

// Report freezes the aggregates into one row per non-empty state, sorted by
// state. An empty-state aggregate is tracked but never reported.
func (a *Aggregator) Report() []model.ReportRow {
	states := make([]string, 0, len(a.regions))
	for state := range a.regions {
		if state != "" {
			states = append(states, state)
		}
	}
	sort.Strings(states)

	rows := make([]model.ReportRow, 0, len(states))
	for _, state := range states {
		region := a.regions[state]
		rows = append(rows, model.ReportRow{
			State:   state,
			Leads:   len(region.samples),
			TopLead: region.maxLead,
			Total:   region.total,
			Median:  median(region.samples),
		})
	}
	return rows
}

// median returns the statistical median: the middle value for odd-sized
// input, the mean of the two middle values for even-sized input.
func median(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
