package normalize

import "regexp"

// phonePattern matches international-leaning phone numbers: an optional
// leading + or (, a first digit 1-9, then eight or more digits/separators,
// ending in a digit. Pattern-only extraction; no real-world validation.
var phonePattern = regexp.MustCompile(`[\+\(]?[1-9][0-9 .\-\(\)]{8,}[0-9]`)

// Phones returns every phone-shaped substring found in the blob, in order.
// An unparseable blob simply yields no matches.
func Phones(raw string) []string {
	return phonePattern.FindAllString(raw, -1)
}
