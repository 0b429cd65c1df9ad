package siteswap

import (
	"strings"

	"golang.org/x/text/cases"
)

// Hand-motion shorthand names.
const (
	HandsInside  = "inside"
	HandsOutside = "outside"
	HandsHalf    = "half"
	HandsMills   = "mills"
)

var handShorthands = map[string]string{
	HandsInside:  "(10)(32.5).",
	HandsOutside: "(32.5)(10).",
	HandsHalf:    "(32.5)(10).(10)(32.5).",
	HandsMills:   "(-25)(2.5).(25)(-2.5).(-25)(0).",
}

// ExpandHands returns the native hand-motion grammar for a shorthand name.
// Unrecognized values are returned unchanged.
func ExpandHands(value string) string {
	if expansion, ok := handShorthands[foldHands(value)]; ok {
		return expansion
	}
	return value
}

// HandsShorthand maps native grammar back to its shorthand name.
func HandsShorthand(value string) (string, bool) {
	value = strings.TrimSpace(value)
	for name, expansion := range handShorthands {
		if expansion == value {
			return name, true
		}
	}
	return "", false
}

func foldHands(value string) string {
	return cases.Fold().String(strings.TrimSpace(value))
}
