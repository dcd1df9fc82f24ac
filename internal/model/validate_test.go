package model

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCardTitleValidation verifica que a regra do título depende só do
// conteúdo sem espaços nas bordas: menos que o mínimo rejeita, a partir
// do mínimo aceita
func TestCardTitleValidation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("titles shorter than the minimum are rejected", prop.ForAll(
		func(title string) bool {
			if utf8.RuneCountInString(strings.TrimSpace(title)) >= MinCardTitleLength {
				return ValidTitle(title)
			}
			return !ValidTitle(title)
		},
		gen.AnyString(),
	))

	properties.Property("surrounding whitespace never changes the verdict", prop.ForAll(
		func(title string, left, right uint8) bool {
			padded := strings.Repeat(" ", int(left)%8) + title + strings.Repeat("\t", int(right)%8)
			return ValidTitle(padded) == ValidTitle(title)
		},
		gen.AlphaString(),
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.Property("whitespace-only titles are always rejected", prop.ForAll(
		func(n uint8) bool {
			return !ValidTitle(strings.Repeat(" ", int(n)%32))
		},
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

// TestLabelColorValidation verifica que só o conjunto enumerado de cores
// é aceito
func TestLabelColorValidation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every enumerated color is accepted", prop.ForAll(
		func(idx uint8) bool {
			return ValidColor(ValidColors[int(idx)%len(ValidColors)])
		},
		gen.UInt8(),
	))

	properties.Property("strings outside the set are rejected", prop.ForAll(
		func(color string) bool {
			for _, c := range ValidColors {
				if c == color {
					return ValidColor(color)
				}
			}
			return !ValidColor(color)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestLabelNameValidation(t *testing.T) {
	cases := []struct {
		name  string
		valid bool
	}{
		{"bug", true},
		{"  padded  ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}

	for _, tc := range cases {
		if got := ValidLabelName(tc.name); got != tc.valid {
			t.Errorf("ValidLabelName(%q) = %v, esperado %v", tc.name, got, tc.valid)
		}
	}
}
