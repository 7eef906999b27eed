package walker

import (
	"strconv"

	"github.com/featwalk/featwalk/pkg/nodemap"
)

// ValueKind distinguishes integer from symbolic selector values.
type ValueKind uint8

const (
	ValueInt ValueKind = iota
	ValueSymbol
)

// Value is a selector value: an integer or an enumeration symbol.
type Value struct {
	kind ValueKind
	i    int64
	s    string
}

// IntValue returns an integer selector value.
func IntValue(i int64) Value { return Value{kind: ValueInt, i: i} }

// SymbolValue returns a symbolic selector value.
func SymbolValue(s string) Value { return Value{kind: ValueSymbol, s: s} }

// Kind returns the value kind.
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the integer and true for integer values.
func (v Value) Int() (int64, bool) { return v.i, v.kind == ValueInt }

// Symbol returns the symbol and true for symbolic values.
func (v Value) Symbol() (string, bool) { return v.s, v.kind == ValueSymbol }

// String renders integers in decimal and symbols verbatim.
func (v Value) String() string {
	if v.kind == ValueInt {
		return strconv.FormatInt(v.i, 10)
	}
	return v.s
}

// Assignment binds one selector to one of its values.
type Assignment struct {
	Selector nodemap.Node
	Value    Value
}

// Occurrence is one concrete, addressable feature. Assignments follow the
// target's declared selector order; an empty list is a direct occurrence.
type Occurrence struct {
	Target      nodemap.Node
	Assignments []Assignment
}

// IsDirect reports whether the occurrence carries no selector assignments.
func (o Occurrence) IsDirect() bool { return len(o.Assignments) == 0 }

// String renders the occurrence as Target[Sel=Value,...] for diagnostics.
func (o Occurrence) String() string {
	s := o.Target.Name()
	if o.IsDirect() {
		return s
	}
	s += "["
	for i, a := range o.Assignments {
		if i > 0 {
			s += ","
		}
		s += a.Selector.Name() + "=" + a.Value.String()
	}
	return s + "]"
}
