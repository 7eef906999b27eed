// Package drift compares the features a device actually exposes with the
// features a consumer-facing catalog publishes.
//
// The authoritative side is the walker's enumeration. The published side is
// maintained independently and may follow a slightly different naming
// convention, so both sides are normalized before matching. An identifier is
// in drift when its normalized form has no counterpart on the other side.
package drift

import (
	"slices"

	"github.com/featwalk/featwalk/pkg/naming"
)

// Set is an unordered set of identifiers.
type Set map[naming.Identifier]struct{}

// NewSet returns a set holding ids.
func NewSet(ids ...naming.Identifier) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id.
func (s Set) Add(id naming.Identifier) { s[id] = struct{}{} }

// Has reports whether id is in the set.
func (s Set) Has(id naming.Identifier) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []naming.Identifier {
	ids := make([]naming.Identifier, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// normalized maps every member through n.
func (s Set) normalized(n naming.Normalizer) Set {
	out := make(Set, len(s))
	for id := range s {
		out[n(id)] = struct{}{}
	}
	return out
}

// Compare returns the authoritative identifiers whose normalized form does
// not occur among the normalized published identifiers. Returned members are
// the original, unnormalized authoritative identifiers. A nil normalize is
// naming.Identity.
func Compare(authoritative, published Set, normalize naming.Normalizer) Set {
	if normalize == nil {
		normalize = naming.Identity
	}
	lookup := published.normalized(normalize)

	missing := make(Set)
	for id := range authoritative {
		if !lookup.Has(normalize(id)) {
			missing.Add(id)
		}
	}
	return missing
}

// PublishedOnly is the reverse of Compare: published identifiers with no
// authoritative counterpart.
func PublishedOnly(authoritative, published Set, normalize naming.Normalizer) Set {
	return Compare(published, authoritative, normalize)
}
