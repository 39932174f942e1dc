package normalize

import (
	"net/mail"
	"strings"
)

// Emails extracts validated addresses from a free-text blob of comma or
// semicolon separated entries, each optionally carrying a display name.
// Invalid candidates are dropped silently. The result is deduplicated by
// first occurrence and keeps the order the parser yielded.
func Emails(raw string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, cand := range splitAddressList(raw) {
		addr, err := mail.ParseAddress(cand)
		if err != nil {
			continue
		}
		email := addr.Address
		if !deliverableDomain(email) {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out
}

// splitAddressList splits on top-level commas and semicolons, leaving
// separators inside quoted display names or angle brackets alone.
func splitAddressList(raw string) []string {
	var (
		parts   []string
		start   int
		quoted  bool
		bracket bool
	)
	for i, r := range raw {
		switch r {
		case '"':
			quoted = !quoted
		case '<':
			if !quoted {
				bracket = true
			}
		case '>':
			if !quoted {
				bracket = false
			}
		case ',', ';':
			if !quoted && !bracket {
				parts = append(parts, raw[start:i])
				start = i + len(string(r))
			}
		}
	}
	parts = append(parts, raw[start:])

	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// deliverableDomain applies syntactic deliverability checks to the domain
// part: at least two dot-separated labels of letters, digits, and interior
// hyphens, with a TLD of two or more characters.
func deliverableDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	labels := strings.Split(email[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" || strings.HasPrefix(l, "-") || strings.HasSuffix(l, "-") {
			return false
		}
		for _, r := range l {
			if !isDomainRune(r) {
				return false
			}
		}
	}
	return len(labels[len(labels)-1]) >= 2
}

func isDomainRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		return true
	}
	return false
}
