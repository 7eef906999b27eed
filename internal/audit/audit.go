// Package audit runs the walker over the configured feature groups and
// compares the result with the published catalogs.
package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/featwalk/featwalk/internal/config"
	"github.com/featwalk/featwalk/pkg/catalog"
	"github.com/featwalk/featwalk/pkg/drift"
	"github.com/featwalk/featwalk/pkg/log"
	"github.com/featwalk/featwalk/pkg/metrics"
	"github.com/featwalk/featwalk/pkg/naming"
	"github.com/featwalk/featwalk/pkg/nodemap"
	"github.com/featwalk/featwalk/pkg/walker"
)

// Audit errors.
var (
	ErrUnknownGroup = errors.New("unknown group")
	ErrNoPublished  = errors.New("group has no published catalog")
	ErrNoGroups     = errors.New("no groups configured")
)

// Options configures an Auditor.
type Options struct {
	// Logger is the optional logger for progress output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// Trace receives walk trace events.
	Trace log.Logger

	// Metrics, when set, receives trace events and drift results.
	Metrics *metrics.Collector
}

// Auditor runs walks and comparisons for a configuration.
type Auditor struct {
	cfg     *config.Config
	logger  *slog.Logger
	trace   log.Logger
	metrics *metrics.Collector
}

// New creates an Auditor.
func New(cfg *config.Config, opts Options) *Auditor {
	a := &Auditor{cfg: cfg, logger: opts.Logger, metrics: opts.Metrics}
	if a.logger == nil {
		a.logger = slog.New(slog.DiscardHandler)
	}

	var sinks []log.Logger
	if opts.Trace != nil {
		sinks = append(sinks, opts.Trace)
	}
	if opts.Metrics != nil {
		sinks = append(sinks, opts.Metrics)
	}
	switch len(sinks) {
	case 0:
		a.trace = log.NoopLogger{}
	case 1:
		a.trace = sinks[0]
	default:
		a.trace = log.NewMultiLogger(sinks...)
	}
	return a
}

// Listing is the walk result of one group.
type Listing struct {
	Group       string
	Root        string
	Occurrences []walker.Occurrence
	Identifiers []naming.Identifier
}

// Catalog returns the listing as an identifier catalog.
func (l *Listing) Catalog() *catalog.Catalog {
	return catalog.New(l.Group, l.Identifiers)
}

// groups returns the named groups, or all groups when names is empty.
func (a *Auditor) groups(names []string) ([]config.GroupConfig, error) {
	if len(a.cfg.Groups) == 0 {
		return nil, ErrNoGroups
	}
	if len(names) == 0 {
		return a.cfg.Groups, nil
	}
	out := make([]config.GroupConfig, 0, len(names))
	for _, n := range names {
		g, ok := a.cfg.Group(n)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, n)
		}
		out = append(out, g)
	}
	return out, nil
}

// ListGroup walks one group and names every occurrence.
func (a *Auditor) ListGroup(ctx context.Context, g config.GroupConfig) (*Listing, error) {
	m, err := nodemap.LoadFile(g.NodeMap)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", g.Name, err)
	}
	root := g.Root
	if root == "" {
		root = m.RootName()
	}

	wcfg := a.cfg.WalkerConfig(g.Name)
	wcfg.Logger = a.logger
	wcfg.Trace = a.trace

	occs, err := walker.New(wcfg).WalkMap(ctx, m, root)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", g.Name, err)
	}

	a.logger.Info("walked group", "group", g.Name, "root", root, "nodes", m.Len(), "occurrences", len(occs))
	return &Listing{
		Group:       g.Name,
		Root:        root,
		Occurrences: occs,
		Identifiers: naming.NameAll(occs, g.Name),
	}, nil
}

// List walks the named groups, or every group, in configuration order.
func (a *Auditor) List(ctx context.Context, names ...string) ([]*Listing, error) {
	groups, err := a.groups(names)
	if err != nil {
		return nil, err
	}
	out := make([]*Listing, 0, len(groups))
	for _, g := range groups {
		l, err := a.ListGroup(ctx, g)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Drift walks the named groups, or every group, and compares each with its
// published catalog.
func (a *Auditor) Drift(ctx context.Context, names ...string) (*drift.Report, error) {
	groups, err := a.groups(names)
	if err != nil {
		return nil, err
	}

	authoritative := make(map[string]drift.Set, len(groups))
	published := make(map[string]drift.Set, len(groups))
	for _, g := range groups {
		if g.Published == "" {
			return nil, fmt.Errorf("%w: %s", ErrNoPublished, g.Name)
		}
		l, err := a.ListGroup(ctx, g)
		if err != nil {
			return nil, err
		}
		cat, err := catalog.Load(g.Published)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", g.Name, err)
		}
		authoritative[g.Name] = drift.NewSet(l.Identifiers...)

		// A catalog may list several groups; unprefixed identifiers belong
		// to the group being audited.
		cat.Group = g.Name
		pub, ok := cat.ByGroup()[g.Name]
		if !ok {
			pub = drift.NewSet()
		}
		published[g.Name] = pub
	}

	r := drift.CompareGroups(authoritative, published, a.cfg.Normalizer())
	r.ID = uuid.NewString()

	if a.metrics != nil {
		a.metrics.ObserveDrift(r)
	}
	a.logger.Info("drift compared",
		"report_id", r.ID,
		"groups", r.Summary.Groups,
		"missing", r.Summary.Missing,
		"published_only", r.Summary.PublishedOnly)
	return r, nil
}

// Capture snapshots the node map of group g to out. A .yaml or .yml out
// gets a plain definition; anything else gets a CBOR snapshot.
func (a *Auditor) Capture(ctx context.Context, g config.GroupConfig, out string) (*nodemap.Snapshot, error) {
	m, err := nodemap.LoadFile(g.NodeMap)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", g.Name, err)
	}
	root := g.Root
	if root == "" {
		root = m.RootName()
	}

	def, err := nodemap.Capture(ctx, m, root)
	if err != nil {
		return nil, fmt.Errorf("group %s: %w", g.Name, err)
	}
	snap := &nodemap.Snapshot{
		Version:    nodemap.SnapshotVersion,
		CapturedAt: time.Now().UTC(),
		Source:     g.NodeMap,
		Definition: *def,
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(out)) {
	case ".yaml", ".yml":
		data, err = def.Marshal()
	default:
		data, err = nodemap.EncodeSnapshot(snap)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return nil, err
	}

	a.logger.Info("captured node map", "group", g.Name, "nodes", len(def.Nodes), "path", out)
	return snap, nil
}

// Group returns the configured group of that name.
func (a *Auditor) Group(name string) (config.GroupConfig, error) {
	g, ok := a.cfg.Group(name)
	if !ok {
		return config.GroupConfig{}, fmt.Errorf("%w: %s", ErrUnknownGroup, name)
	}
	return g, nil
}
