package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/featwalk/featwalk/pkg/log"
)

// traceFilter holds the filter flags shared by the trace subcommands.
type traceFilter struct {
	walkID string
	group  string
	node   string
	action string
	reason string
}

func (f *traceFilter) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.walkID, "walk", "", "filter by walk ID")
	cmd.Flags().StringVar(&f.group, "group-name", "", "filter by group")
	cmd.Flags().StringVar(&f.node, "node", "", "filter by node name")
	cmd.Flags().StringVar(&f.action, "action", "", "filter by action (START, END, EXPAND, SKIP, EMIT, ERROR)")
	cmd.Flags().StringVar(&f.reason, "reason", "", "filter skips by reason (e.g. not-implemented, selector)")
}

func (f *traceFilter) build() (log.Filter, error) {
	filter := log.Filter{WalkID: f.walkID, Group: f.group, Node: f.node}
	if f.action != "" {
		a, ok := log.ParseAction(strings.ToUpper(f.action))
		if !ok {
			return filter, fmt.Errorf("unknown action %q", f.action)
		}
		filter.Action = &a
	}
	if f.reason != "" {
		r, ok := log.ParseReason(strings.ToLower(f.reason))
		if !ok {
			return filter, fmt.Errorf("unknown reason %q", f.reason)
		}
		filter.Reason = &r
	}
	return filter, nil
}

func newTraceCmd(_ *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect walk trace files",
	}
	cmd.AddCommand(newTraceViewCmd(), newTraceStatsCmd(), newTraceExportCmd())
	return cmd
}

func newTraceViewCmd() *cobra.Command {
	var f traceFilter
	cmd := &cobra.Command{
		Use:   "view <file.ftrace>",
		Short: "Print trace events in human-readable form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := f.build()
			if err != nil {
				return err
			}
			return RunView(args[0], filter, cmd.OutOrStdout())
		},
	}
	f.register(cmd)
	return cmd
}

func newTraceStatsCmd() *cobra.Command {
	var f traceFilter
	cmd := &cobra.Command{
		Use:   "stats <file.ftrace>",
		Short: "Summarize a trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := f.build()
			if err != nil {
				return err
			}
			return RunStats(args[0], filter, cmd.OutOrStdout())
		},
	}
	f.register(cmd)
	return cmd
}

func newTraceExportCmd() *cobra.Command {
	var f traceFilter
	cmd := &cobra.Command{
		Use:   "export <file.ftrace>",
		Short: "Export trace events as JSON lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := f.build()
			if err != nil {
				return err
			}
			return RunExport(args[0], filter, cmd.OutOrStdout())
		},
	}
	f.register(cmd)
	return cmd
}

// eachEvent calls fn for every event of path matching filter.
func eachEvent(path string, filter log.Filter, fn func(log.Event) error) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}

// RunView prints the events of a trace file, one line each.
func RunView(path string, filter log.Filter, w io.Writer) error {
	return eachEvent(path, filter, func(e log.Event) error {
		formatEvent(w, e)
		return nil
	})
}

// formatEvent writes one line: timestamp [walk] ACTION group node details.
func formatEvent(w io.Writer, e log.Event) {
	ts := e.Timestamp.UTC().Format("15:04:05.000000")
	fmt.Fprintf(w, "%s [%s] %-6s", ts, shortenID(e.WalkID), e.Action)
	if e.Group != "" {
		fmt.Fprintf(w, " %s", e.Group)
	}
	if e.Node != "" {
		fmt.Fprintf(w, " %s (%s)", e.Node, e.Kind)
	}

	switch e.Action {
	case log.ActionSkip:
		fmt.Fprintf(w, " reason=%s", e.Reason)
	case log.ActionExpand:
		fmt.Fprintf(w, " children=%d", e.Count)
	case log.ActionEmit:
		fmt.Fprintf(w, " occurrences=%d", e.Count)
		if len(e.Selectors) > 0 {
			fmt.Fprintf(w, " selectors=%s combinations=%d", strings.Join(e.Selectors, ","), e.Combinations)
		}
	case log.ActionWalkEnd:
		fmt.Fprintf(w, " occurrences=%d duration=%s", e.Count, e.Duration.Round(time.Microsecond))
	case log.ActionError:
		fmt.Fprintf(w, " error=%q", e.Error)
	}
	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of a walk ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents int
	Walks       map[string]*WalkStats
	ByAction    map[log.Action]int
	ByReason    map[log.Reason]int
	Occurrences int
	Errors      int
}

// WalkStats holds statistics for one walk.
type WalkStats struct {
	Group       string
	Root        string
	Start       time.Time
	Occurrences int
	Duration    time.Duration
	Failed      bool
}

// CollectStats aggregates the events of a trace file.
func CollectStats(path string, filter log.Filter) (*Stats, error) {
	stats := &Stats{
		Walks:    make(map[string]*WalkStats),
		ByAction: make(map[log.Action]int),
		ByReason: make(map[log.Reason]int),
	}
	err := eachEvent(path, filter, func(e log.Event) error {
		stats.TotalEvents++
		stats.ByAction[e.Action]++

		ws, ok := stats.Walks[e.WalkID]
		if !ok {
			ws = &WalkStats{Group: e.Group, Start: e.Timestamp}
			stats.Walks[e.WalkID] = ws
		}

		switch e.Action {
		case log.ActionWalkStart:
			ws.Root = e.Node
			ws.Start = e.Timestamp
		case log.ActionSkip:
			stats.ByReason[e.Reason]++
		case log.ActionEmit:
			stats.Occurrences += e.Count
		case log.ActionWalkEnd:
			ws.Occurrences = e.Count
			ws.Duration = e.Duration
		case log.ActionError:
			ws.Failed = true
			stats.Errors++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RunStats prints statistics about a trace file.
func RunStats(path string, filter log.Filter, w io.Writer) error {
	stats, err := CollectStats(path, filter)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Walk Trace Statistics ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Occurrences:  %d\n", stats.Occurrences)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Action:")
	for a := log.ActionWalkStart; a <= log.ActionError; a++ {
		if count := stats.ByAction[a]; count > 0 {
			fmt.Fprintf(w, "  %-18s %d\n", a.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.ByReason) > 0 {
		fmt.Fprintln(w, "Skips by Reason:")
		for r := log.ReasonNone; r <= log.ReasonNotRequested; r++ {
			if count := stats.ByReason[r]; count > 0 {
				fmt.Fprintf(w, "  %-18s %d\n", r.String()+":", count)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Walks: %d\n", len(stats.Walks))
	ids := make([]string, 0, len(stats.Walks))
	for id := range stats.Walks {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		return stats.Walks[a].Start.Compare(stats.Walks[b].Start)
	})
	for _, id := range ids {
		ws := stats.Walks[id]
		status := fmt.Sprintf("%d occurrences in %s", ws.Occurrences, ws.Duration.Round(time.Microsecond))
		if ws.Failed {
			status = "failed"
		}
		fmt.Fprintf(w, "  [%s] %s from %s: %s\n", shortenID(id), ws.Group, ws.Root, status)
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}

// jsonEvent is the JSON lines form of an event, with names instead of
// numeric codes.
type jsonEvent struct {
	Timestamp    time.Time `json:"timestamp"`
	WalkID       string    `json:"walk_id"`
	Group        string    `json:"group,omitempty"`
	Action       string    `json:"action"`
	Node         string    `json:"node,omitempty"`
	Kind         string    `json:"kind,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	Count        int       `json:"count,omitempty"`
	Selectors    []string  `json:"selectors,omitempty"`
	Combinations int       `json:"combinations,omitempty"`
	Error        string    `json:"error,omitempty"`
	DurationNS   int64     `json:"duration_ns,omitempty"`
}

// RunExport writes the events of a trace file as JSON lines.
func RunExport(path string, filter log.Filter, w io.Writer) error {
	enc := json.NewEncoder(w)
	return eachEvent(path, filter, func(e log.Event) error {
		je := jsonEvent{
			Timestamp:    e.Timestamp,
			WalkID:       e.WalkID,
			Group:        e.Group,
			Action:       e.Action.String(),
			Node:         e.Node,
			Count:        e.Count,
			Selectors:    e.Selectors,
			Combinations: e.Combinations,
			Error:        e.Error,
			DurationNS:   int64(e.Duration),
		}
		if e.Node != "" {
			je.Kind = e.Kind.String()
		}
		if e.Action == log.ActionSkip {
			je.Reason = e.Reason.String()
		}
		if err := enc.Encode(je); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		return nil
	})
}
