package walker

import (
	"fmt"
	"strings"
)

// DirectPolicy decides when a selector-qualified feature is also, or instead,
// emitted as a direct occurrence.
type DirectPolicy uint8

const (
	// DirectOnSingleCombination emits one direct occurrence when the
	// selector product has at most one combination, zero included (a
	// selector without candidates), and only the expansions otherwise.
	DirectOnSingleCombination DirectPolicy = iota

	// DirectOnSingleSelector emits every expansion and, when exactly one
	// selector applies, a direct occurrence after them.
	DirectOnSingleSelector

	// DirectNever emits the expansions only.
	DirectNever
)

// String returns the policy name used in configuration files.
func (p DirectPolicy) String() string {
	switch p {
	case DirectOnSingleCombination:
		return "single-combination"
	case DirectOnSingleSelector:
		return "single-selector"
	case DirectNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseDirectPolicy parses a policy name as printed by String.
func ParseDirectPolicy(s string) (DirectPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single-combination":
		return DirectOnSingleCombination, nil
	case "single-selector":
		return DirectOnSingleSelector, nil
	case "never":
		return DirectNever, nil
	default:
		return 0, fmt.Errorf("unknown direct policy %q", s)
	}
}
