package rota

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Gold,  5 ", "gold 5"},
		{"GOLD 5", "gold 5"},
		{"mist   scu", "mist scu"},
		{"\t Blue  1-1 \n", "blue 1-1"},
		{",,,", ""},
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"  Gold,  5 ", "Silver", "MIST SCU, 2", "  ", "gray 1 md"} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	assert.Equal(t, Normalize("gold 5"), Normalize("Gold,  5"))
	assert.Equal(t, Normalize("mist scu"), Normalize(" MIST  SCU, "))
}
