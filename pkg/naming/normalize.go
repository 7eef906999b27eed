package naming

import "strings"

// Normalizer maps an identifier to the form used for comparison.
// Implementations must be pure.
type Normalizer func(Identifier) Identifier

// Identity returns identifiers unchanged.
func Identity(id Identifier) Identifier { return id }

// Replace returns a normalizer that substitutes every from with to.
func Replace(from, to string) Normalizer {
	return func(id Identifier) Identifier {
		return Identifier(strings.ReplaceAll(string(id), from, to))
	}
}

// Lower returns the identifier in lower case.
func Lower(id Identifier) Identifier {
	return Identifier(strings.ToLower(string(id)))
}

// Chain applies normalizers left to right. Nil entries are skipped.
func Chain(ns ...Normalizer) Normalizer {
	return func(id Identifier) Identifier {
		for _, n := range ns {
			if n != nil {
				id = n(id)
			}
		}
		return id
	}
}

// Default is the normalizer the proxy catalog needs: its identifiers use
// "_" where the walker uses "-".
func Default() Normalizer { return Replace("_", "-") }

// ByName returns a named normalizer: "default", "identity" or "lower".
// Names may be combined with "+", e.g. "default+lower".
func ByName(spec string) (Normalizer, bool) {
	var chain []Normalizer
	for _, part := range strings.Split(spec, "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "", "default":
			chain = append(chain, Default())
		case "identity", "none":
			chain = append(chain, Identity)
		case "lower":
			chain = append(chain, Lower)
		default:
			return nil, false
		}
	}
	return Chain(chain...), true
}
