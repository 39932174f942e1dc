// Package normalize turns raw CSV field text into canonical values.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// nameParticles are surname particles kept lowercase when they are not the
// first part of the name ("Juan de la Vega").
var nameParticles = map[string]struct{}{
	"da": {}, "das": {}, "de": {}, "del": {}, "della": {}, "den": {},
	"der": {}, "di": {}, "dos": {}, "du": {}, "e": {}, "la": {},
	"le": {}, "van": {}, "von": {}, "y": {},
}

// nameSuffixes maps generational and professional suffixes to their
// conventional casing.
var nameSuffixes = map[string]string{
	"ii":  "II",
	"iii": "III",
	"iv":  "IV",
	"md":  "MD",
	"phd": "PhD",
}

// Name re-capitalizes a free-text person name part by part. Particles stay
// lowercase, Mc/Mac/O' surnames and dotted initials keep their conventional
// forms, and generational suffixes are uppercased. Empty input yields "".
func Name(raw string) string {
	parts := strings.Fields(raw)
	for i, p := range parts {
		parts[i] = namePart(p, i == 0)
	}
	return strings.Join(parts, " ")
}

func namePart(part string, first bool) string {
	trailing := ""
	if strings.HasSuffix(part, ",") {
		part, trailing = strings.TrimSuffix(part, ","), ","
	}

	lower := strings.ToLower(part)
	if !first {
		if s, ok := nameSuffixes[lower]; ok {
			return s + trailing
		}
		if _, ok := nameParticles[lower]; ok {
			return lower + trailing
		}
	}

	if strings.Contains(part, "-") {
		sides := strings.Split(part, "-")
		for i, s := range sides {
			sides[i] = capitalizeWord(s)
		}
		return strings.Join(sides, "-") + trailing
	}
	return capitalizeWord(part) + trailing
}

func capitalizeWord(w string) string {
	lower := strings.ToLower(w)
	if isInitials(lower) {
		return strings.ToUpper(lower)
	}
	switch {
	case strings.HasPrefix(lower, "mc") && len(lower) > 2:
		return "Mc" + titleCaser.String(lower[2:])
	case strings.HasPrefix(lower, "mac") && len(lower) > 4:
		return "Mac" + titleCaser.String(lower[3:])
	case strings.HasPrefix(lower, "o'") && len(lower) > 2:
		return "O'" + titleCaser.String(lower[2:])
	}
	return titleCaser.String(lower)
}

// isInitials reports whether a word is dotted initials like "j.r." or "j.".
func isInitials(w string) bool {
	if !strings.Contains(w, ".") {
		return false
	}
	for _, seg := range strings.Split(w, ".") {
		if len(seg) > 1 {
			return false
		}
	}
	return true
}
