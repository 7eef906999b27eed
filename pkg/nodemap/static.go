package nodemap

import (
	"fmt"
	"slices"
)

// Map is a static node map built from a Definition.
// It is immutable after construction and safe for concurrent use.
type Map struct {
	root  string
	order []string
	nodes map[string]*staticNode
}

// New builds a Map from a definition.
//
// Names, kinds and visibilities are validated here, and the child graph must
// be acyclic. References to other nodes (children, selectors) are resolved
// lazily, so a dangling reference surfaces as an ErrNodeNotFound from the
// query that follows it.
func New(def *Definition) (*Map, error) {
	if def == nil || len(def.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrInvalidDefinition)
	}

	m := &Map{
		root:  def.Root,
		order: make([]string, 0, len(def.Nodes)),
		nodes: make(map[string]*staticNode, len(def.Nodes)),
	}
	if m.root == "" {
		m.root = DefaultRoot
	}

	for i := range def.Nodes {
		nd := &def.Nodes[i]
		if nd.Name == "" {
			return nil, fmt.Errorf("%w: node %d has no name", ErrInvalidDefinition, i)
		}
		if _, exists := m.nodes[nd.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, nd.Name)
		}

		kind, err := ParseKind(nd.Kind)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", nd.Name, err)
		}
		vis, err := ParseVisibility(nd.Visibility)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", nd.Name, err)
		}

		n := &staticNode{
			m:           m,
			name:        nd.Name,
			kind:        kind,
			visibility:  vis,
			implemented: boolOr(nd.Implemented, true),
			children:    slices.Clone(nd.Children),
			selecting:   slices.Clone(nd.Selectors),
			selected:    slices.Clone(nd.Selected),
		}

		switch kind {
		case KindInteger:
			inc := int64(1)
			if nd.Inc != nil {
				inc = *nd.Inc
			}
			n.rng = IntRange{Min: nd.Min, Max: nd.Max, Inc: inc}
		case KindEnumeration:
			for _, e := range nd.Entries {
				n.entries = append(n.entries, EnumEntry{
					Name:        e.Name,
					Symbolic:    SymbolicName(nd.Name, e.Name),
					Implemented: boolOr(e.Implemented, true),
				})
			}
		}

		m.nodes[nd.Name] = n
		m.order = append(m.order, nd.Name)
	}

	// Derive the selected relation from every node's selectors.
	for _, name := range m.order {
		for _, sel := range m.nodes[name].selecting {
			if s, ok := m.nodes[sel]; ok && !slices.Contains(s.selected, name) {
				s.selected = append(s.selected, name)
			}
		}
	}

	if err := m.checkAcyclic(); err != nil {
		return nil, err
	}
	return m, nil
}

// checkAcyclic rejects a child graph with a cycle. Unknown child names are
// skipped; they fail when queried.
func (m *Map) checkAcyclic() error {
	const (
		visiting = iota + 1
		done
	)
	state := make(map[string]int, len(m.nodes))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			return fmt.Errorf("%w: child cycle through %s", ErrInvalidDefinition, name)
		case done:
			return nil
		}
		state[name] = visiting
		for _, c := range m.nodes[name].children {
			if _, ok := m.nodes[c]; !ok {
				continue
			}
			if err := visit(c); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	for _, name := range m.order {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

// Node returns the node with the given name.
func (m *Map) Node(name string) (Node, error) {
	n, ok := m.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, name)
	}
	return n, nil
}

// RootName returns the name of the root node.
func (m *Map) RootName() string {
	return m.root
}

// Root returns the root node.
func (m *Map) Root() (Node, error) {
	return m.Node(m.root)
}

// Len returns the number of nodes.
func (m *Map) Len() int {
	return len(m.order)
}

// Compile-time interface satisfaction check.
var _ NodeMap = (*Map)(nil)

type staticNode struct {
	m           *Map
	name        string
	kind        Kind
	visibility  Visibility
	implemented bool
	children    []string
	selecting   []string
	selected    []string
	rng         IntRange
	entries     []EnumEntry
}

func (n *staticNode) Name() string           { return n.name }
func (n *staticNode) Kind() Kind             { return n.kind }
func (n *staticNode) Visibility() Visibility { return n.visibility }

func (n *staticNode) IsImplemented() (bool, error) {
	return n.implemented, nil
}

func (n *staticNode) Children() ([]Node, error) {
	return n.resolve(n.children, "child")
}

func (n *staticNode) SelectingFeatures() ([]Node, error) {
	return n.resolve(n.selecting, "selector")
}

func (n *staticNode) SelectedFeatures() ([]Node, error) {
	return n.resolve(n.selected, "selected feature")
}

func (n *staticNode) IntRange() (IntRange, error) {
	if n.kind != KindInteger {
		return IntRange{}, fmt.Errorf("%w: %s is %s, not integer", ErrWrongKind, n.name, n.kind)
	}
	return n.rng, nil
}

func (n *staticNode) EnumEntries() ([]EnumEntry, error) {
	if n.kind != KindEnumeration {
		return nil, fmt.Errorf("%w: %s is %s, not enumeration", ErrWrongKind, n.name, n.kind)
	}
	return slices.Clone(n.entries), nil
}

func (n *staticNode) resolve(names []string, rel string) ([]Node, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]Node, 0, len(names))
	for _, name := range names {
		ref, ok := n.m.nodes[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s (%s of %s)", ErrNodeNotFound, name, rel, n.name)
		}
		out = append(out, ref)
	}
	return out, nil
}
