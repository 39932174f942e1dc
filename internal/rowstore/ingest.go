package rowstore

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/lead-import/internal/model"
	"github.com/sells-group/lead-import/internal/normalize"
)

// Source CSV column order. The header row is read and discarded.
const (
	colCompany = iota
	colName
	colEmails
	colPhones
	colFounded
	colRevenue
	colState
	columnCount
)

// Load reads the source CSV at path into a new store.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "rowstore: open csv %s", path)
	}
	defer f.Close() //nolint:errcheck

	s, err := FromReader(f)
	if err != nil {
		return nil, err
	}
	zap.L().Info("rowstore: csv ingested",
		zap.String("csv", path),
		zap.Int("rows", s.Len()),
		zap.Int("companies", len(s.companies)),
	)
	return s, nil
}

// FromReader ingests CSV data from r. Founding dates are converted to the
// storage format up front; a malformed non-empty date aborts ingestion.
func FromReader(r io.Reader) (*Store, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "rowstore: read csv")
	}

	s := New()
	if len(records) < 2 {
		return s, nil // header only or empty
	}

	for i, rec := range records[1:] {
		if len(rec) < columnCount {
			return nil, eris.Errorf("rowstore: row %d has %d columns, want %d", i+2, len(rec), columnCount)
		}

		founded := rec[colFounded]
		if founded != "" {
			founded, err = normalize.DisplayToStorage(founded)
			if err != nil {
				return nil, eris.Wrapf(err, "rowstore: row %d", i+2)
			}
		}

		s.Add(model.RawRow{
			Company: rec[colCompany],
			Name:    rec[colName],
			Emails:  rec[colEmails],
			Phones:  rec[colPhones],
			Founded: founded,
			Revenue: rec[colRevenue],
			State:   rec[colState],
		})
	}
	return s, nil
}
