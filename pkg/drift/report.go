package drift

import (
	"cmp"
	"slices"
	"time"

	"github.com/featwalk/featwalk/pkg/naming"
)

// GroupReport is the comparison result of one group.
type GroupReport struct {
	Group         string              `json:"group"`
	Authoritative int                 `json:"authoritative"`
	Published     int                 `json:"published"`
	Matched       int                 `json:"matched"`
	Missing       []naming.Identifier `json:"missing,omitempty"`
	PublishedOnly []naming.Identifier `json:"published_only,omitempty"`
}

// Summary totals every group of a report.
type Summary struct {
	Groups             int `json:"groups"`
	TotalAuthoritative int `json:"total_authoritative"`
	TotalPublished     int `json:"total_published"`
	Matched            int `json:"matched"`
	Missing            int `json:"missing"`
	PublishedOnly      int `json:"published_only"`
}

// Report is the drift report over all groups.
type Report struct {
	ID          string        `json:"id,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
	Groups      []GroupReport `json:"groups"`
	Summary     Summary       `json:"summary"`
}

// HasDrift reports whether any authoritative identifier is unpublished.
func (r *Report) HasDrift() bool { return r.Summary.Missing > 0 }

// Group returns the report of the named group.
func (r *Report) Group(name string) (GroupReport, bool) {
	for _, g := range r.Groups {
		if g.Group == name {
			return g, true
		}
	}
	return GroupReport{}, false
}

// CompareGroup compares one group in both directions.
func CompareGroup(name string, authoritative, published Set, normalize naming.Normalizer) GroupReport {
	missing := Compare(authoritative, published, normalize)
	return GroupReport{
		Group:         name,
		Authoritative: len(authoritative),
		Published:     len(published),
		Matched:       len(authoritative) - len(missing),
		Missing:       missing.Sorted(),
		PublishedOnly: PublishedOnly(authoritative, published, normalize).Sorted(),
	}
}

// CompareGroups compares every group independently. A group present on
// only one side is compared against an empty set. Groups with the most
// missing identifiers come first, then by name.
func CompareGroups(authoritative, published map[string]Set, normalize naming.Normalizer) *Report {
	names := make(map[string]struct{}, len(authoritative))
	for g := range authoritative {
		names[g] = struct{}{}
	}
	for g := range published {
		names[g] = struct{}{}
	}

	r := &Report{GeneratedAt: time.Now().UTC()}
	for g := range names {
		gr := CompareGroup(g, authoritative[g], published[g], normalize)
		r.Groups = append(r.Groups, gr)

		r.Summary.TotalAuthoritative += gr.Authoritative
		r.Summary.TotalPublished += gr.Published
		r.Summary.Matched += gr.Matched
		r.Summary.Missing += len(gr.Missing)
		r.Summary.PublishedOnly += len(gr.PublishedOnly)
	}
	r.Summary.Groups = len(r.Groups)

	slices.SortFunc(r.Groups, func(a, b GroupReport) int {
		if c := cmp.Compare(len(b.Missing), len(a.Missing)); c != 0 {
			return c
		}
		return cmp.Compare(a.Group, b.Group)
	})
	return r
}
