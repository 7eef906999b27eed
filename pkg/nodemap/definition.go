package nodemap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition describes a static node map.
type Definition struct {
	// Root is the name of the node walks start from. Defaults to "Root".
	Root string `yaml:"root" cbor:"1,keyasint"`

	// Nodes lists every node in declaration order.
	Nodes []NodeDef `yaml:"nodes" cbor:"2,keyasint"`
}

// NodeDef describes one node of a static node map.
type NodeDef struct {
	Name        string `yaml:"name" cbor:"1,keyasint"`
	Kind        string `yaml:"kind" cbor:"2,keyasint"`
	Implemented *bool  `yaml:"implemented,omitempty" cbor:"3,keyasint,omitempty"`
	Visibility  string `yaml:"visibility,omitempty" cbor:"4,keyasint,omitempty"`

	// Children names the members of a category, in order.
	Children []string `yaml:"children,omitempty" cbor:"5,keyasint,omitempty"`

	// Selectors names the selecting features of this node, in order.
	Selectors []string `yaml:"selectors,omitempty" cbor:"6,keyasint,omitempty"`

	// Selected names the nodes this selector selects. The inverse of every
	// other node's Selectors is merged in when the map is built.
	Selected []string `yaml:"selected,omitempty" cbor:"7,keyasint,omitempty"`

	// Integer bounds. Inc defaults to 1 when omitted.
	Min int64  `yaml:"min,omitempty" cbor:"8,keyasint,omitempty"`
	Max int64  `yaml:"max,omitempty" cbor:"9,keyasint,omitempty"`
	Inc *int64 `yaml:"inc,omitempty" cbor:"10,keyasint,omitempty"`

	// Entries lists enumeration entries in order.
	Entries []EntryDef `yaml:"entries,omitempty" cbor:"11,keyasint,omitempty"`
}

// EntryDef describes one enumeration entry.
type EntryDef struct {
	Name        string `yaml:"name" cbor:"1,keyasint"`
	Implemented *bool  `yaml:"implemented,omitempty" cbor:"2,keyasint,omitempty"`
}

// DefaultRoot is the conventional root category name.
const DefaultRoot = "Root"

// Parse parses a node map definition from YAML bytes.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing node map: %w", err)
	}
	if len(def.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrInvalidDefinition)
	}
	if def.Root == "" {
		def.Root = DefaultRoot
	}
	return &def, nil
}

// LoadDefinition loads a definition from a YAML file or a CBOR snapshot,
// chosen by file extension (.yaml, .yml, .cbor, .fsnap).
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".cbor", ".fsnap":
		snap, err := DecodeSnapshot(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return &snap.Definition, nil
	default:
		def, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return def, nil
	}
}

// LoadFile loads a definition file and builds a Map from it.
func LoadFile(path string) (*Map, error) {
	def, err := LoadDefinition(path)
	if err != nil {
		return nil, err
	}
	return New(def)
}

// Marshal encodes the definition as YAML.
func (d *Definition) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
