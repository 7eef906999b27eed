package walker

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/featwalk/featwalk/pkg/log"
	"github.com/featwalk/featwalk/pkg/nodemap"
)

// DefaultMaxCombinations bounds the selector product of a single feature in
// DefaultConfig.
const DefaultMaxCombinations = 65536

// Config configures a Walker.
type Config struct {
	// WithSelectors expands selector-qualified features into one occurrence
	// per selector combination. When false every feature is emitted direct.
	WithSelectors bool

	// OnlyImplemented skips nodes that are not implemented, together with
	// their subtree.
	OnlyImplemented bool

	// Policy controls direct occurrences of selector-qualified features.
	Policy DirectPolicy

	// Filter removes features, categories and selectors from the walk.
	Filter Filter

	// MaxCombinations bounds the selector product per feature (0 = no limit).
	MaxCombinations int

	// Group is recorded in trace events.
	Group string

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// Trace receives one event per dequeued node. If nil, tracing is
	// disabled.
	Trace log.Logger
}

// DefaultConfig returns a Config that expands selectors over implemented
// nodes only.
func DefaultConfig() Config {
	return Config{
		WithSelectors:   true,
		OnlyImplemented: true,
		Policy:          DirectOnSingleCombination,
		MaxCombinations: DefaultMaxCombinations,
	}
}

// Walker enumerates feature occurrences. A Walker holds no per-walk state
// and may be reused.
type Walker struct {
	cfg    Config
	logger *slog.Logger
	trace  log.Logger
}

// New creates a Walker.
func New(cfg Config) *Walker {
	w := &Walker{cfg: cfg, logger: cfg.Logger, trace: cfg.Trace}
	if w.logger == nil {
		w.logger = slog.New(slog.DiscardHandler)
	}
	if w.trace == nil {
		w.trace = log.NoopLogger{}
	}
	return w
}

// Config returns the walker configuration.
func (w *Walker) Config() Config { return w.cfg }

// Walk enumerates with default policy and no filters.
func Walk(ctx context.Context, root nodemap.Node, withSelectors, onlyImplemented bool) ([]Occurrence, error) {
	return New(Config{WithSelectors: withSelectors, OnlyImplemented: onlyImplemented}).Walk(ctx, root)
}

// WalkMap resolves rootName in m and walks from it.
func (w *Walker) WalkMap(ctx context.Context, m nodemap.NodeMap, rootName string) ([]Occurrence, error) {
	root, err := m.Node(rootName)
	if err != nil {
		return nil, fmt.Errorf("resolving root %q: %w", rootName, err)
	}
	return w.Walk(ctx, root)
}

// Walk traverses breadth-first from root and returns every occurrence in
// visit order. On error no occurrences are returned.
func (w *Walker) Walk(ctx context.Context, root nodemap.Node) ([]Occurrence, error) {
	r := &run{Walker: w, id: uuid.NewString()}
	start := time.Now()

	r.event(log.Event{Action: log.ActionWalkStart, Node: root.Name(), Kind: root.Kind()})

	occs, err := r.walk(ctx, root)
	if err != nil {
		r.event(log.Event{Action: log.ActionError, Error: err.Error()})
		w.logger.Debug("walk failed", "walk_id", r.id, "group", w.cfg.Group, "root", root.Name(), "error", err)
		return nil, err
	}

	elapsed := time.Since(start)
	r.event(log.Event{Action: log.ActionWalkEnd, Count: len(occs), Duration: elapsed})
	w.logger.Debug("walk complete",
		"walk_id", r.id,
		"group", w.cfg.Group,
		"root", root.Name(),
		"occurrences", len(occs),
		"duration", elapsed)
	return occs, nil
}

// run is the state of one Walk call.
type run struct {
	*Walker
	id string
}

func (r *run) event(e log.Event) {
	e.Timestamp = time.Now()
	e.WalkID = r.id
	e.Group = r.cfg.Group
	r.trace.Log(e)
}

func (r *run) skip(n nodemap.Node, reason log.Reason) {
	r.event(log.Event{Action: log.ActionSkip, Node: n.Name(), Kind: n.Kind(), Reason: reason})
}

func (r *run) walk(ctx context.Context, root nodemap.Node) ([]Occurrence, error) {
	var out []Occurrence
	queue := []nodemap.Node{root}
	// A node reachable through several categories, or through a cycle, is
	// visited once.
	seen := make(map[string]bool)

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		node := queue[0]
		queue[0] = nil
		queue = queue[1:]
		name := node.Name()
		if seen[name] {
			continue
		}
		seen[name] = true

		if r.cfg.OnlyImplemented {
			ok, err := node.IsImplemented()
			if err != nil {
				return nil, queryErr(name, "IsImplemented", err)
			}
			if !ok {
				r.skip(node, log.ReasonNotImplemented)
				continue
			}
		}

		selected, err := node.SelectedFeatures()
		if err != nil {
			return nil, queryErr(name, "SelectedFeatures", err)
		}
		if len(selected) > 0 {
			r.skip(node, log.ReasonSelector)
			continue
		}

		kind := node.Kind()
		switch {
		case kind == nodemap.KindCategory:
			if r.cfg.Filter.excludesCategory(name) {
				r.skip(node, log.ReasonExcludedCategory)
				continue
			}
			children, err := node.Children()
			if err != nil {
				return nil, queryErr(name, "Children", err)
			}
			queue = append(queue, children...)
			r.event(log.Event{Action: log.ActionExpand, Node: name, Kind: nodemap.KindCategory, Count: len(children)})
			continue
		case !kind.IsLeaf():
			r.skip(node, log.ReasonNoValue)
			continue
		}

		if reason, ok := r.filtered(node); ok {
			r.skip(node, reason)
			continue
		}

		if r.cfg.WithSelectors {
			selectors, err := node.SelectingFeatures()
			if err != nil {
				return nil, queryErr(name, "SelectingFeatures", err)
			}
			if len(selectors) > 0 {
				res, err := r.resolve(node, selectors)
				if err != nil {
					return nil, err
				}
				out = append(out, res.occurrences...)
				r.event(log.Event{
					Action:       log.ActionEmit,
					Node:         name,
					Kind:         node.Kind(),
					Count:        len(res.occurrences),
					Selectors:    res.selectors,
					Combinations: res.combinations,
				})
				continue
			}
		}

		out = append(out, Occurrence{Target: node})
		r.event(log.Event{Action: log.ActionEmit, Node: name, Kind: node.Kind(), Count: 1})
	}
	return out, nil
}

// filtered applies the feature-level filters.
func (r *run) filtered(n nodemap.Node) (log.Reason, bool) {
	f := &r.cfg.Filter
	switch {
	case slices.Contains(f.ExcludeFeatures, n.Name()):
		return log.ReasonExcludedFeature, true
	case f.HideInvisible && n.Visibility() == nodemap.VisibilityInvisible:
		return log.ReasonInvisible, true
	case f.OnlyFeature != "" && n.Name() != f.OnlyFeature:
		return log.ReasonNotRequested, true
	}
	return log.ReasonNone, false
}
