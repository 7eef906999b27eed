// Package catalog reads and writes identifier catalogs.
//
// A catalog is the list of feature identifiers one side publishes for a
// group. Three file formats are supported, chosen by extension:
//
//	.yaml, .yml   group, source and identifiers as a YAML document
//	.cbor         the same document, CBOR encoded with integer keys
//	.txt          one identifier per line; blank lines and # comments ignored
package catalog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/featwalk/featwalk/pkg/drift"
	"github.com/featwalk/featwalk/pkg/naming"
)

// ErrUnknownFormat is returned for file extensions with no catalog format.
var ErrUnknownFormat = errors.New("unknown catalog format")

// Format is a catalog file format.
type Format uint8

const (
	FormatYAML Format = iota
	FormatCBOR
	FormatText
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatCBOR:
		return "cbor"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// FormatOf returns the format for path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cbor":
		return FormatCBOR, nil
	case ".txt":
		return FormatText, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Catalog is the identifier list of one group.
type Catalog struct {
	// Group is the identifier prefix, e.g. "cam".
	Group string `yaml:"group" cbor:"1,keyasint"`

	// Source describes where the identifiers came from.
	Source string `yaml:"source,omitempty" cbor:"2,keyasint,omitempty"`

	// Identifiers in catalog order.
	Identifiers []naming.Identifier `yaml:"identifiers" cbor:"3,keyasint"`
}

// New returns a catalog for group holding ids.
func New(group string, ids []naming.Identifier) *Catalog {
	return &Catalog{Group: group, Identifiers: slices.Clone(ids)}
}

// Set returns the identifiers as a set.
func (c *Catalog) Set() drift.Set {
	return drift.NewSet(c.Identifiers...)
}

// ByGroup splits the identifiers by prefix. Identifiers without a prefix go
// to the catalog's own group.
func (c *Catalog) ByGroup() map[string]drift.Set {
	out := make(map[string]drift.Set)
	for _, id := range c.Identifiers {
		g := id.Prefix()
		if g == "" {
			g = c.Group
		}
		if out[g] == nil {
			out[g] = make(drift.Set)
		}
		out[g].Add(id)
	}
	return out
}

var cborEnc cbor.EncMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("catalog CBOR encoder mode: %v", err))
	}
}

// Marshal encodes the catalog in format f.
func (c *Catalog) Marshal(f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		return yaml.Marshal(c)
	case FormatCBOR:
		return cborEnc.Marshal(c)
	case FormatText:
		var b bytes.Buffer
		for _, id := range c.Identifiers {
			b.WriteString(string(id))
			b.WriteByte('\n')
		}
		return b.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}

// Parse decodes a catalog in format f.
func Parse(data []byte, f Format) (*Catalog, error) {
	var c Catalog
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing catalog: %w", err)
		}
	case FormatCBOR:
		if err := cbor.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("decoding catalog: %w", err)
		}
	case FormatText:
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			c.Identifiers = append(c.Identifiers, naming.Identifier(line))
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}

	if c.Group == "" {
		c.Group = commonPrefix(c.Identifiers)
	}
	return &c, nil
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Source == "" {
		c.Source = path
	}
	return c, nil
}

// Save writes a catalog file, replacing any existing file.
func Save(path string, c *Catalog) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := c.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// commonPrefix returns the prefix shared by every identifier, or "".
func commonPrefix(ids []naming.Identifier) string {
	var prefix string
	for i, id := range ids {
		p := id.Prefix()
		if i == 0 {
			prefix = p
		} else if p != prefix {
			return ""
		}
	}
	return prefix
}
