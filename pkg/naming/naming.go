// Package naming turns feature occurrences into flat identifiers and
// provides the normalizers used when comparing identifier catalogs.
//
// An identifier has the form
//
//	<prefix>::<feature>[-<value>]...
//
// for example "cam::LineMode-1" or "cam::LUTValue-Red-2". Values are appended
// in the feature's declared selector order. Nothing is escaped: a feature or
// value containing "-" produces an identifier that cannot be split back into
// its parts.
package naming

import (
	"strings"

	"github.com/featwalk/featwalk/pkg/walker"
)

// Separators used in identifiers.
const (
	PrefixSeparator = "::"
	ValueSeparator  = "-"
)

// Identifier is a flat feature name such as "cam::Gain-All".
type Identifier string

// String returns the identifier text.
func (id Identifier) String() string { return string(id) }

// Prefix returns the group prefix, or "" when there is none.
func (id Identifier) Prefix() string {
	prefix, _ := Split(id)
	return prefix
}

// Name formats an occurrence as an identifier under prefix.
func Name(occ walker.Occurrence, prefix string) Identifier {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(PrefixSeparator)
	b.WriteString(occ.Target.Name())
	for _, a := range occ.Assignments {
		b.WriteString(ValueSeparator)
		b.WriteString(a.Value.String())
	}
	return Identifier(b.String())
}

// NameAll names every occurrence, preserving order.
func NameAll(occs []walker.Occurrence, prefix string) []Identifier {
	ids := make([]Identifier, len(occs))
	for i, o := range occs {
		ids[i] = Name(o, prefix)
	}
	return ids
}

// Split returns the prefix and the remainder of id. An identifier without
// a prefix separator has an empty prefix.
func Split(id Identifier) (prefix, rest string) {
	if p, r, ok := strings.Cut(string(id), PrefixSeparator); ok {
		return p, r
	}
	return "", string(id)
}
