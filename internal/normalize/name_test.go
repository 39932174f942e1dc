package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple_lower", in: "jane smith", want: "Jane Smith"},
		{name: "shouty", in: "JOHN DOE", want: "John Doe"},
		{name: "mc_prefix", in: "ronald mcdonald", want: "Ronald McDonald"},
		{name: "mac_prefix", in: "alice macarthur", want: "Alice MacArthur"},
		{name: "o_apostrophe", in: "conor o'brien", want: "Conor O'Brien"},
		{name: "particle", in: "juan de la vega", want: "Juan de la Vega"},
		{name: "particle_first", in: "van buren", want: "Van Buren"},
		{name: "hyphenated", in: "mary smith-jones", want: "Mary Smith-Jones"},
		{name: "initials", in: "j.r. ewing", want: "J.R. Ewing"},
		{name: "roman_suffix", in: "henry ford ii", want: "Henry Ford II"},
		{name: "degree_suffix", in: "gregory house md", want: "Gregory House MD"},
		{name: "comma_suffix", in: "sammy davis, jr", want: "Sammy Davis, Jr"},
		{name: "extra_spaces", in: "  jane   smith ", want: "Jane Smith"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.in))
		})
	}
}
