package nodemap

import (
	"errors"
	"strings"
)

// Node map errors.
var (
	ErrNodeNotFound       = errors.New("node not found")
	ErrWrongKind          = errors.New("query not supported for node kind")
	ErrInvalidDefinition  = errors.New("invalid node map definition")
	ErrUnknownKind        = errors.New("unknown node kind")
	ErrUnknownVisibility  = errors.New("unknown visibility")
	ErrDuplicateNode      = errors.New("duplicate node name")
	ErrSnapshotVersion    = errors.New("unsupported snapshot version")
	ErrCaptureUnreachable = errors.New("capture root not resolvable")
)

// NodeMap resolves nodes by name.
type NodeMap interface {
	// Node returns the node with the given name, or an error wrapping
	// ErrNodeNotFound.
	Node(name string) (Node, error)
}

// Node is a read-only reference to one entry of a node map.
//
// Name, Kind and Visibility are static metadata. Every other method is a
// query against the registry and may block or fail; callers must not assume
// repeated calls are cheap.
type Node interface {
	Name() string
	Kind() Kind
	Visibility() Visibility

	// IsImplemented reports whether the node is available given current
	// device state.
	IsImplemented() (bool, error)

	// Children returns the declared children of a Category in order.
	Children() ([]Node, error)

	// SelectingFeatures returns the selectors this node depends on, in
	// declared order.
	SelectingFeatures() ([]Node, error)

	// SelectedFeatures returns the nodes that depend on this node.
	SelectedFeatures() ([]Node, error)

	// IntRange returns minimum, maximum and increment of an IntegerLeaf.
	IntRange() (IntRange, error)

	// EnumEntries returns all symbolic entries of an EnumerationLeaf,
	// implemented or not.
	EnumEntries() ([]EnumEntry, error)
}

// IntRange holds the bounds of an integer node.
type IntRange struct {
	Min int64 `yaml:"min" cbor:"1,keyasint"`
	Max int64 `yaml:"max" cbor:"2,keyasint"`
	Inc int64 `yaml:"inc" cbor:"3,keyasint"`
}

// EnumEntry is one symbolic value of an enumeration node.
type EnumEntry struct {
	// Name is the entry node name as the registry reports it.
	Name string `cbor:"1,keyasint"`

	// Symbolic is the value text used for selection and naming.
	Symbolic string `cbor:"2,keyasint"`

	// Implemented reports whether the entry is currently available.
	Implemented bool `cbor:"3,keyasint"`
}

// entryPrefix is the registry naming convention for enumeration entry nodes.
const entryPrefix = "EnumEntry_"

// SymbolicName strips the "EnumEntry_<enum>_" prefix registries put in front
// of entry node names. Names without the prefix are returned unchanged.
func SymbolicName(enumName, entryName string) string {
	prefix := entryPrefix + enumName + "_"
	if s, ok := strings.CutPrefix(entryName, prefix); ok && s != "" {
		return s
	}
	return entryName
}
