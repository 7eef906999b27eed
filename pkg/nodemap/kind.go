package nodemap

import (
	"fmt"
	"strings"
)

// Kind is the principal interface type of a node.
type Kind uint8

const (
	KindOther Kind = iota
	KindCategory
	KindInteger
	KindEnumeration
	KindCommand
	KindRegister
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindInteger:
		return "integer"
	case KindEnumeration:
		return "enumeration"
	case KindCommand:
		return "command"
	case KindRegister:
		return "register"
	default:
		return "other"
	}
}

// IsLeaf returns true for kinds that carry a value of their own.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindInteger, KindEnumeration, KindOther:
		return true
	default:
		return false
	}
}

// ParseKind parses a kind name. Value types without enumerable semantics
// (float, boolean, string) map to KindOther.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "category":
		return KindCategory, nil
	case "integer", "int":
		return KindInteger, nil
	case "enumeration", "enum":
		return KindEnumeration, nil
	case "command":
		return KindCommand, nil
	case "register":
		return KindRegister, nil
	case "other", "float", "boolean", "bool", "string":
		return KindOther, nil
	default:
		return KindOther, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Visibility is the recommended audience of a node.
type Visibility uint8

const (
	VisibilityBeginner Visibility = iota
	VisibilityExpert
	VisibilityGuru
	VisibilityInvisible
)

// String returns the visibility name.
func (v Visibility) String() string {
	switch v {
	case VisibilityBeginner:
		return "beginner"
	case VisibilityExpert:
		return "expert"
	case VisibilityGuru:
		return "guru"
	case VisibilityInvisible:
		return "invisible"
	default:
		return "unknown"
	}
}

// ParseVisibility parses a visibility name. The empty string is Beginner.
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "beginner":
		return VisibilityBeginner, nil
	case "expert":
		return VisibilityExpert, nil
	case "guru":
		return VisibilityGuru, nil
	case "invisible":
		return VisibilityInvisible, nil
	default:
		return VisibilityBeginner, fmt.Errorf("%w: %q", ErrUnknownVisibility, s)
	}
}
