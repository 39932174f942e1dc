// Package rowstore holds all ingested contact rows in memory, indexed by
// company key. The store is populated once during ingestion and read-only
// afterwards.
package rowstore

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/lead-import/internal/model"
)

// Store is an in-memory index of raw rows keyed by exact company name.
type Store struct {
	rows      []model.RawRow
	byCompany map[string][]int
	companies []string // distinct company keys, first-appearance order
}

// New returns an empty store.
func New() *Store {
	return &Store{byCompany: make(map[string][]int)}
}

// Add appends a row, preserving file order within its company group.
func (s *Store) Add(row model.RawRow) {
	if _, ok := s.byCompany[row.Company]; !ok {
		s.companies = append(s.companies, row.Company)
	}
	s.byCompany[row.Company] = append(s.byCompany[row.Company], len(s.rows))
	s.rows = append(s.rows, row)
}

// Companies returns each distinct company key exactly once, in the order it
// first appeared.
func (s *Store) Companies() []string {
	out := make([]string, len(s.companies))
	copy(out, s.companies)
	return out
}

// All returns every row for the company in file order.
func (s *Store) All(company string) []model.RawRow {
	idxs := s.byCompany[company]
	out := make([]model.RawRow, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, s.rows[i])
	}
	return out
}

// Valid returns the company's rows that can seed a contact, in file order.
func (s *Store) Valid(company string) []model.RawRow {
	var out []model.RawRow
	for _, i := range s.byCompany[company] {
		if s.rows[i].Valid() {
			out = append(out, s.rows[i])
		}
	}
	return out
}

// Canonical picks the row that seeds the company's lead record: the first
// valid row, falling back to the first row overall when no valid row exists.
// An invalid fallback still carries company-level metadata worth keeping.
// Selection is deterministic; both the push and aggregation passes rely on
// getting the same row back.
func (s *Store) Canonical(company string) (model.RawRow, error) {
	if valid := s.Valid(company); len(valid) > 0 {
		return valid[0], nil
	}
	if all := s.All(company); len(all) > 0 {
		return all[0], nil
	}
	return model.RawRow{}, eris.Errorf("rowstore: no rows for company %q", company)
}

// Len returns the total number of ingested rows.
func (s *Store) Len() int {
	return len(s.rows)
}
