// Package report writes the regional rollup to a delimited file.
package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/lead-import/internal/model"
)

var header = []string{
	"US State",
	"Total number of leads",
	"The lead with most revenue",
	"Total revenue",
	"Median revenue",
}

// WriteCSV writes the report rows to path, one line per state.
// Numeric fields are rendered as plain decimal text.
func WriteCSV(path string, rows []model.ReportRow) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "report: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return eris.Wrap(err, "report: write header")
	}
	for _, row := range rows {
		rec := []string{
			row.State,
			strconv.Itoa(row.Leads),
			row.TopLead,
			formatDecimal(row.Total),
			formatDecimal(row.Median),
		}
		if err := w.Write(rec); err != nil {
			return eris.Wrapf(err, "report: write row %s", row.State)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "report: flush")
	}

	zap.L().Info("report: written", zap.String("path", path), zap.Int("rows", len(rows)))
	return nil
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
