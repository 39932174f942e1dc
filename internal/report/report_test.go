package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/lead-import/internal/model"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	rows := []model.ReportRow{
		{State: "CA", Leads: 2, TopLead: "Globex", Total: 400, Median: 200},
		{State: "TX", Leads: 1, TopLead: "Initech", Total: 1234.56, Median: 1234.56},
	}
	require.NoError(t, WriteCSV(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "US State,Total number of leads,The lead with most revenue,Total revenue,Median revenue\n" +
		"CA,2,Globex,400,200\n" +
		"TX,1,Initech,1234.56,1234.56\n"
	assert.Equal(t, want, string(data))
}

func TestWriteCSVEmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, WriteCSV(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "US State,Total number of leads,The lead with most revenue,Total revenue,Median revenue\n", string(data))
}
