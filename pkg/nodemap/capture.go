package nodemap

import (
	"context"
	"fmt"
)

// Capture copies the part of a node map reachable from root into a static
// Definition. Children, selecting features and selected features are all
// followed, so selectors declared outside the root's category tree are kept.
//
// Every node is queried once. The first failing query aborts the capture.
func Capture(ctx context.Context, m NodeMap, root string) (*Definition, error) {
	start, err := m.Node(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCaptureUnreachable, err)
	}

	def := &Definition{Root: root}
	seen := map[string]bool{root: true}
	queue := []Node{start}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n := queue[0]
		queue = queue[1:]

		nd, refs, err := captureNode(n)
		if err != nil {
			return nil, err
		}
		def.Nodes = append(def.Nodes, nd)

		for _, r := range refs {
			if !seen[r.Name()] {
				seen[r.Name()] = true
				queue = append(queue, r)
			}
		}
	}

	return def, nil
}

func captureNode(n Node) (NodeDef, []Node, error) {
	nd := NodeDef{
		Name: n.Name(),
		Kind: n.Kind().String(),
	}
	if v := n.Visibility(); v != VisibilityBeginner {
		nd.Visibility = v.String()
	}

	impl, err := n.IsImplemented()
	if err != nil {
		return nd, nil, fmt.Errorf("capture %s: implemented: %w", nd.Name, err)
	}
	if !impl {
		nd.Implemented = &impl
	}

	var refs []Node

	children, err := n.Children()
	if err != nil {
		return nd, nil, fmt.Errorf("capture %s: children: %w", nd.Name, err)
	}
	for _, c := range children {
		nd.Children = append(nd.Children, c.Name())
	}
	refs = append(refs, children...)

	selecting, err := n.SelectingFeatures()
	if err != nil {
		return nd, nil, fmt.Errorf("capture %s: selecting features: %w", nd.Name, err)
	}
	for _, s := range selecting {
		nd.Selectors = append(nd.Selectors, s.Name())
	}
	refs = append(refs, selecting...)

	selected, err := n.SelectedFeatures()
	if err != nil {
		return nd, nil, fmt.Errorf("capture %s: selected features: %w", nd.Name, err)
	}
	for _, s := range selected {
		nd.Selected = append(nd.Selected, s.Name())
	}
	refs = append(refs, selected...)

	switch n.Kind() {
	case KindInteger:
		rng, err := n.IntRange()
		if err != nil {
			return nd, nil, fmt.Errorf("capture %s: range: %w", nd.Name, err)
		}
		nd.Min, nd.Max = rng.Min, rng.Max
		inc := rng.Inc
		nd.Inc = &inc
	case KindEnumeration:
		entries, err := n.EnumEntries()
		if err != nil {
			return nd, nil, fmt.Errorf("capture %s: entries: %w", nd.Name, err)
		}
		for _, e := range entries {
			ed := EntryDef{Name: e.Name}
			if ed.Name == "" {
				ed.Name = e.Symbolic
			}
			if !e.Implemented {
				impl := false
				ed.Implemented = &impl
			}
			nd.Entries = append(nd.Entries, ed)
		}
	}

	return nd, refs, nil
}
