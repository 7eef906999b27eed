package drift

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featwalk/featwalk/pkg/naming"
)

func TestCompareNormalizesBothSides(t *testing.T) {
	auth := NewSet("cam::Foo", "cam::Bar-1")
	pub := NewSet("cam::Foo", "cam::Bar_1")

	assert.Empty(t, Compare(auth, pub, naming.Replace("_", "-")))
}

func TestCompareReportsMissing(t *testing.T) {
	auth := NewSet("cam::Foo", "cam::Baz")
	pub := NewSet("cam::Foo")

	got := Compare(auth, pub, naming.Default())
	assert.Equal(t, []naming.Identifier{"cam::Baz"}, got.Sorted())
}

func TestCompareReturnsOriginalIdentifiers(t *testing.T) {
	auth := NewSet("cam::Line_Mode-1")
	pub := NewSet("cam::Other")

	got := Compare(auth, pub, naming.Default())
	assert.True(t, got.Has("cam::Line_Mode-1"))
	assert.False(t, got.Has("cam::Line-Mode-1"))
}

func TestCompareNilNormalizer(t *testing.T) {
	auth := NewSet("cam::Bar-1")
	pub := NewSet("cam::Bar_1")

	assert.Len(t, Compare(auth, pub, nil), 1)
	assert.Empty(t, Compare(NewSet(), pub, nil))
	assert.Len(t, Compare(auth, nil, nil), 1)
}

func TestPublishedOnly(t *testing.T) {
	auth := NewSet("cam::Foo", "cam::Bar-1")
	pub := NewSet("cam::Foo", "cam::Bar_1", "cam::Legacy")

	got := PublishedOnly(auth, pub, naming.Default())
	assert.Equal(t, []naming.Identifier{"cam::Legacy"}, got.Sorted())
}

func TestCompareGroups(t *testing.T) {
	auth := map[string]Set{
		"cam":    NewSet("cam::Foo", "cam::Baz", "cam::Qux-1"),
		"stream": NewSet("stream::Fps"),
	}
	pub := map[string]Set{
		"cam":    NewSet("cam::Foo", "cam::Qux_1", "cam::Old"),
		"stream": NewSet("stream::Fps"),
		"extra":  NewSet("extra::X"),
	}

	r := CompareGroups(auth, pub, naming.Default())
	require.Len(t, r.Groups, 3)

	// Most missing first, then by name.
	assert.Equal(t, "cam", r.Groups[0].Group)
	assert.Equal(t, "extra", r.Groups[1].Group)
	assert.Equal(t, "stream", r.Groups[2].Group)

	cam, ok := r.Group("cam")
	require.True(t, ok)
	assert.Equal(t, 3, cam.Authoritative)
	assert.Equal(t, 3, cam.Published)
	assert.Equal(t, 2, cam.Matched)
	assert.Equal(t, []naming.Identifier{"cam::Baz"}, cam.Missing)
	assert.Equal(t, []naming.Identifier{"cam::Old"}, cam.PublishedOnly)

	extra, _ := r.Group("extra")
	assert.Equal(t, 0, extra.Authoritative)
	assert.Equal(t, []naming.Identifier{"extra::X"}, extra.PublishedOnly)

	assert.Equal(t, Summary{
		Groups:             3,
		TotalAuthoritative: 4,
		TotalPublished:     5,
		Matched:            3,
		Missing:            1,
		PublishedOnly:      2,
	}, r.Summary)
	assert.True(t, r.HasDrift())

	_, ok = r.Group("nope")
	assert.False(t, ok)
}

func TestCompareGroupsIndependent(t *testing.T) {
	// An identifier published under the wrong group is still drift.
	auth := map[string]Set{"cam": NewSet("cam::Foo")}
	pub := map[string]Set{"stream": NewSet("cam::Foo")}

	r := CompareGroups(auth, pub, naming.Identity)
	cam, _ := r.Group("cam")
	assert.Equal(t, []naming.Identifier{"cam::Foo"}, cam.Missing)
}

func TestWriteText(t *testing.T) {
	r := CompareGroups(
		map[string]Set{"cam": NewSet("cam::Foo", "cam::Baz")},
		map[string]Set{"cam": NewSet("cam::Foo", "cam::Old")},
		naming.Default(),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Feature Drift Report")
	assert.Contains(t, out, "cam::Baz")
	assert.Contains(t, out, "cam::Old")
	assert.Contains(t, out, "Missing:          1")
	assert.Contains(t, out, "Matched:          1 (50%)")
}

func TestWriteTextNoDrift(t *testing.T) {
	r := CompareGroups(map[string]Set{"cam": NewSet("cam::Foo")}, map[string]Set{"cam": NewSet("cam::Foo")}, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	assert.True(t, strings.Contains(buf.String(), "no missing features"))
	assert.False(t, r.HasDrift())
}

func TestWriteJSON(t *testing.T) {
	r := CompareGroups(
		map[string]Set{"cam": NewSet("cam::Foo", "cam::Baz")},
		map[string]Set{"cam": NewSet("cam::Foo")},
		nil,
	)
	r.ID = "report-1"

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "report-1", decoded.ID)
	assert.Equal(t, r.Summary, decoded.Summary)
	require.Len(t, decoded.Groups, 1)
	assert.Equal(t, []naming.Identifier{"cam::Baz"}, decoded.Groups[0].Missing)
	assert.Contains(t, buf.String(), `"published_only": 0`)
}
