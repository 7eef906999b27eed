package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featwalk/featwalk/pkg/catalog"
	"github.com/featwalk/featwalk/pkg/drift"
	"github.com/featwalk/featwalk/pkg/log"
	"github.com/featwalk/featwalk/pkg/nodemap"
)

const (
	cameraMap    = "../../../pkg/nodemap/testdata/camera.yaml"
	camPublished = "../../../internal/audit/testdata/cam.txt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestListProxy(t *testing.T) {
	out, err := execute(t, "list", "--map", cameraMap, "--group", "cam", "--proxy")
	require.NoError(t, err)

	got := lines(out)
	assert.Len(t, got, 15)
	assert.Equal(t, "cam::DeviceModelName", got[0])
	assert.Contains(t, got, "cam::LUTValue-Luminance-0")
}

func TestListOccurrences(t *testing.T) {
	out, err := execute(t, "list", "--map", cameraMap, "--group", "cam", "--occurrences", "--only-feature", "LineMode")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"cam::LineMode[LineSelector=1]",
		"cam::LineMode[LineSelector=2]",
		"cam::LineMode[LineSelector=3]",
	}, lines(out))
}

func TestListWritesCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cam.yaml")
	_, err := execute(t, "list", "--map", cameraMap, "--group", "cam", "--proxy", "-o", path)
	require.NoError(t, err)

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cam", c.Group)
	assert.Len(t, c.Identifiers, 15)
}

func TestListWithoutGroups(t *testing.T) {
	_, err := execute(t, "list")
	assert.Error(t, err)
}

func TestDriftText(t *testing.T) {
	out, err := execute(t, "drift", "--map", cameraMap, "--group", "cam", "--proxy", "--published", camPublished)
	assert.ErrorIs(t, err, ErrDrift)
	assert.Contains(t, out, "=== Feature Drift Report ===")
	assert.Contains(t, out, "cam::LineInverter-3")
	assert.Contains(t, out, "cam::AcquisitionMode")
}

func TestDriftJSON(t *testing.T) {
	out, err := execute(t, "drift", "--map", cameraMap, "--group", "cam", "--proxy", "--published", camPublished, "--json")
	assert.ErrorIs(t, err, ErrDrift)

	var r drift.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.Len(t, r.Groups, 1)
	assert.Equal(t, 1, r.Summary.Missing)
	assert.Equal(t, 1, r.Summary.PublishedOnly)
}

func TestDriftConfigFile(t *testing.T) {
	dir := t.TempDir()
	abs := func(p string) string {
		a, err := filepath.Abs(p)
		require.NoError(t, err)
		return a
	}
	cfg := "filter:\n  proxy: true\ngroups:\n" +
		"  - name: cam\n    node_map: " + abs(cameraMap) + "\n    published: " + abs(camPublished) + "\n" +
		"  - name: stream\n    node_map: " + abs("../../../internal/audit/testdata/stream.yaml") +
		"\n    published: " + abs("../../../internal/audit/testdata/stream.txt") + "\n"
	path := filepath.Join(dir, "featwalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	_, err := execute(t, "drift", "-c", path, "stream")
	assert.NoError(t, err)

	_, err = execute(t, "drift", "-c", path)
	assert.ErrorIs(t, err, ErrDrift)
}

func TestDriftWithoutPublished(t *testing.T) {
	_, err := execute(t, "drift", "--map", cameraMap, "--group", "cam")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDrift)
}

func TestCapture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cam.fsnap")
	out, err := execute(t, "capture", "--map", cameraMap, "--group", "cam", "cam", path)
	require.NoError(t, err)
	assert.Contains(t, out, "captured")

	m, err := nodemap.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Root", m.RootName())
}

func TestTraceAndMetrics(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "walk.ftrace")
	metricsPath := filepath.Join(dir, "featwalk.prom")

	_, err := execute(t, "list", "--map", cameraMap, "--group", "cam",
		"--trace-file", tracePath, "--metrics-textfile", metricsPath)
	require.NoError(t, err)

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `featwalk_occurrences_total{group="cam"} 18`)

	t.Run("view", func(t *testing.T) {
		out, err := execute(t, "trace", "view", "--action", "emit", "--node", "LUTValue", tracePath)
		require.NoError(t, err)
		got := lines(out)
		require.Len(t, got, 1)
		assert.Contains(t, got[0], "LUTValue (integer)")
		assert.Contains(t, got[0], "occurrences=6")
		assert.Contains(t, got[0], "selectors=LUTSelector,LUTIndex")
	})

	t.Run("skips", func(t *testing.T) {
		out, err := execute(t, "trace", "view", "--reason", "selector", tracePath)
		require.NoError(t, err)
		assert.Contains(t, out, "LineSelector")
		assert.NotContains(t, out, "EMIT")
	})

	t.Run("stats", func(t *testing.T) {
		stats, err := CollectStats(tracePath, log.Filter{})
		require.NoError(t, err)
		assert.Len(t, stats.Walks, 1)
		assert.Equal(t, 18, stats.Occurrences)
		assert.Equal(t, 1, stats.ByAction[log.ActionWalkStart])
		assert.Equal(t, 1, stats.ByAction[log.ActionWalkEnd])
		assert.Zero(t, stats.Errors)

		out, err := execute(t, "trace", "stats", tracePath)
		require.NoError(t, err)
		assert.Contains(t, out, "=== Walk Trace Statistics ===")
		assert.Contains(t, out, "cam from Root: 18 occurrences")
	})

	t.Run("export", func(t *testing.T) {
		out, err := execute(t, "trace", "export", "--action", "END", tracePath)
		require.NoError(t, err)
		var e jsonEvent
		require.NoError(t, json.Unmarshal([]byte(out), &e))
		assert.Equal(t, "END", e.Action)
		assert.Equal(t, 18, e.Count)
	})

	t.Run("bad filter", func(t *testing.T) {
		_, err := execute(t, "trace", "view", "--action", "JUMP", tracePath)
		assert.Error(t, err)
	})
}
