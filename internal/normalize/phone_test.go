package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhones(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "mixed_blob",
			in:   "call +1-555-123-4567 or 555.987.6543 ext9",
			want: []string{"+1-555-123-4567", "555.987.6543"},
		},
		{
			name: "parenthesized_area_code",
			in:   "(212) 555-0100",
			want: []string{"(212) 555-0100"},
		},
		{name: "leading_zero_rejected", in: "012345678901", want: []string{"12345678901"}},
		{name: "too_short", in: "555-1234", want: nil},
		{name: "no_digits", in: "call me maybe", want: nil},
		{name: "empty", in: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phones(tt.in))
		})
	}
}
