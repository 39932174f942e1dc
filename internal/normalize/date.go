package normalize

import (
	"time"

	"github.com/rotisserie/eris"
)

const (
	displayLayout = "02.01.2006" // source CSV and user input
	storageLayout = "2006-01-02" // internal storage, lexicographically ordered
	crmLayout     = "02-01-2006" // display form re-emitted to the CRM
)

// DisplayToStorage converts a DD.MM.YYYY date to YYYY-MM-DD.
// Only valid calendar dates convert; anything else is an error.
func DisplayToStorage(s string) (string, error) {
	t, err := time.Parse(displayLayout, s)
	if err != nil {
		return "", eris.Wrapf(err, "normalize: parse display date %q", s)
	}
	return t.Format(storageLayout), nil
}

// StorageToDisplay converts a YYYY-MM-DD date back to the DD-MM-YYYY display
// family. The round trip is lossless for the date value.
func StorageToDisplay(s string) (string, error) {
	t, err := time.Parse(storageLayout, s)
	if err != nil {
		return "", eris.Wrapf(err, "normalize: parse storage date %q", s)
	}
	return t.Format(crmLayout), nil
}
