package utils_test

import (
	"regexp"
	"testing"

	"safarihub/utils"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Lake Victoria Sunset!", "lake-victoria-sunset"},
		{"Gorilla Trekking", "gorilla-trekking"},
		{"  Leading & Trailing  ", "leading-trailing"},
		{"Already-Hyphenated--Twice", "already-hyphenated-twice"},
		{"UPPER case 123", "upper-case-123"},
		{"Émigré Café", "migr-caf"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, utils.Slugify(tc.in), "input %q", tc.in)
	}
}

func TestSlugifyCharsetAndDeterminism(t *testing.T) {
	charset := regexp.MustCompile(`^[a-z0-9-]*$`)
	inputs := []string{"Murchison Falls", "A   B   C", "x_y.z", "Trek #5 (2025)"}
	for _, in := range inputs {
		first := utils.Slugify(in)
		assert.Regexp(t, charset, first)
		assert.Equal(t, first, utils.Slugify(in))
		assert.NotRegexp(t, regexp.MustCompile(`^-|-$`), first)
	}
}
