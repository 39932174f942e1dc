package normalize

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Currency parses a currency-formatted string like "$1,234.56" into a float.
// The leading symbol and thousands separators are stripped; anything else
// non-numeric is an error. Callers must guard against empty input first.
func Currency(raw string) (float64, error) {
	runes := []rune(raw)
	if len(runes) == 0 {
		return 0, eris.New("normalize: empty currency string")
	}
	cleaned := strings.ReplaceAll(string(runes[1:]), ",", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "normalize: parse currency %q", raw)
	}
	return f, nil
}
