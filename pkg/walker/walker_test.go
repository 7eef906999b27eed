package walker_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featwalk/featwalk/pkg/log"
	"github.com/featwalk/featwalk/pkg/nodemap"
	"github.com/featwalk/featwalk/pkg/nodemap/mocks"
	"github.com/featwalk/featwalk/pkg/walker"
)

const cameraFixture = "../nodemap/testdata/camera.yaml"

var cameraOccurrences = []string{
	"DeviceModelName",
	"DeviceTemperature",
	"Width",
	"PixelFormat",
	"Gain",
	"LineMode[LineSelector=1]",
	"LineMode[LineSelector=2]",
	"LineMode[LineSelector=3]",
	"LineInverter[LineSelector=1]",
	"LineInverter[LineSelector=2]",
	"LineInverter[LineSelector=3]",
	"LUTValue[LUTSelector=Luminance,LUTIndex=0]",
	"LUTValue[LUTSelector=Luminance,LUTIndex=1]",
	"LUTValue[LUTSelector=Luminance,LUTIndex=2]",
	"LUTValue[LUTSelector=Red,LUTIndex=0]",
	"LUTValue[LUTSelector=Red,LUTIndex=1]",
	"LUTValue[LUTSelector=Red,LUTIndex=2]",
	"EventExposureEndTimestamp",
}

func loadCamera(t *testing.T) *nodemap.Map {
	t.Helper()
	m, err := nodemap.LoadFile(cameraFixture)
	require.NoError(t, err)
	return m
}

func strs(occs []walker.Occurrence) []string {
	out := make([]string, len(occs))
	for i, o := range occs {
		out[i] = o.String()
	}
	return out
}

// recorder collects trace events.
type recorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recorder) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func TestWalkCamera(t *testing.T) {
	m := loadCamera(t)

	occs, err := walker.New(walker.DefaultConfig()).WalkMap(context.Background(), m, "Root")
	require.NoError(t, err)
	assert.Equal(t, cameraOccurrences, strs(occs))
}

func TestWalkPackageFunction(t *testing.T) {
	m := loadCamera(t)
	root, err := m.Root()
	require.NoError(t, err)

	occs, err := walker.Walk(context.Background(), root, true, true)
	require.NoError(t, err)
	assert.Equal(t, cameraOccurrences, strs(occs))
}

func TestWalkNeverEmitsStructuralNodes(t *testing.T) {
	m := loadCamera(t)

	for _, onlyImplemented := range []bool{true, false} {
		for _, withSelectors := range []bool{true, false} {
			cfg := walker.Config{WithSelectors: withSelectors, OnlyImplemented: onlyImplemented}
			occs, err := walker.New(cfg).WalkMap(context.Background(), m, "Root")
			require.NoError(t, err)

			for _, o := range occs {
				switch o.Target.Kind() {
				case nodemap.KindCategory, nodemap.KindCommand, nodemap.KindRegister:
					t.Errorf("%+v: emitted %s node %s", cfg, o.Target.Kind(), o.Target.Name())
				}
				if o.IsDirect() {
					selected, err := o.Target.SelectedFeatures()
					require.NoError(t, err)
					assert.Empty(t, selected, "selector %s emitted standalone", o.Target.Name())
				}
			}
		}
	}
}

func TestWalkEmitsEachLeafOnce(t *testing.T) {
	m := loadCamera(t)

	occs, err := walker.New(walker.Config{OnlyImplemented: true}).WalkMap(context.Background(), m, "Root")
	require.NoError(t, err)

	seen := map[string]int{}
	for _, o := range occs {
		assert.True(t, o.IsDirect())
		seen[o.Target.Name()]++
	}
	want := []string{
		"DeviceModelName", "DeviceTemperature", "Width", "PixelFormat", "Gain",
		"LineMode", "LineInverter", "LUTValue", "EventExposureEndTimestamp",
	}
	assert.Len(t, seen, len(want))
	for _, name := range want {
		assert.Equal(t, 1, seen[name], name)
	}
}

func TestWalkIncludesUnimplemented(t *testing.T) {
	m := loadCamera(t)

	occs, err := walker.New(walker.Config{WithSelectors: true}).WalkMap(context.Background(), m, "Root")
	require.NoError(t, err)

	got := strs(occs)
	assert.Len(t, got, len(cameraOccurrences)+2)
	assert.Contains(t, got, "TestPattern")
	assert.Contains(t, got, "SequencerMode")
	// Unimplemented enum entries are never selector values.
	assert.NotContains(t, got, "Gain[GainSelector=Red]")
	assert.Contains(t, got, "Gain")
}

func TestWalkProxyFilter(t *testing.T) {
	m := loadCamera(t)

	cfg := walker.DefaultConfig()
	cfg.Filter = walker.ProxyFilter()
	occs, err := walker.New(cfg).WalkMap(context.Background(), m, "Root")
	require.NoError(t, err)

	got := strs(occs)
	assert.Len(t, got, 15)
	assert.NotContains(t, got, "PixelFormat")
	assert.NotContains(t, got, "DeviceTemperature")
	assert.NotContains(t, got, "EventExposureEndTimestamp")
	assert.Equal(t, "DeviceModelName", got[0])
}

func TestWalkOnlyFeature(t *testing.T) {
	m := loadCamera(t)

	cfg := walker.DefaultConfig()
	cfg.Filter.OnlyFeature = "LineMode"
	occs, err := walker.New(cfg).WalkMap(context.Background(), m, "Root")
	require.NoError(t, err)
	assert.Equal(t, cameraOccurrences[5:8], strs(occs))
}

func TestWalkMapUnknownRoot(t *testing.T) {
	m := loadCamera(t)

	occs, err := walker.New(walker.DefaultConfig()).WalkMap(context.Background(), m, "Nope")
	assert.Nil(t, occs)
	assert.ErrorIs(t, err, nodemap.ErrNodeNotFound)
}

func TestWalkCancelled(t *testing.T) {
	m := loadCamera(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	occs, err := walker.New(walker.DefaultConfig()).WalkMap(ctx, m, "Root")
	assert.Nil(t, occs)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalkDanglingChildAborts(t *testing.T) {
	m, err := nodemap.New(&nodemap.Definition{Nodes: []nodemap.NodeDef{
		{Name: "Root", Kind: "category", Children: []string{"Width", "Missing"}},
		{Name: "Width", Kind: "integer", Max: 10},
	}})
	require.NoError(t, err)

	occs, err := walker.New(walker.DefaultConfig()).WalkMap(context.Background(), m, "Root")
	assert.Nil(t, occs)
	assert.ErrorIs(t, err, nodemap.ErrNodeNotFound)

	var qe *walker.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "Root", qe.Node)
	assert.Equal(t, "Children", qe.Op)
}

func TestWalkSharedChildEmittedOnce(t *testing.T) {
	m, err := nodemap.New(&nodemap.Definition{Nodes: []nodemap.NodeDef{
		{Name: "Root", Kind: "category", Children: []string{"A", "B"}},
		{Name: "A", Kind: "category", Children: []string{"Gain"}},
		{Name: "B", Kind: "category", Children: []string{"Gain", "Width"}},
		{Name: "Gain", Kind: "float"},
		{Name: "Width", Kind: "integer", Max: 10},
	}})
	require.NoError(t, err)

	occs, err := walker.New(walker.DefaultConfig()).WalkMap(context.Background(), m, "Root")
	require.NoError(t, err)
	assert.Equal(t, []string{"Gain", "Width"}, strs(occs))
}

func TestWalkCyclicAdapterTerminates(t *testing.T) {
	gain := mocks.NewMockNode(t)
	gain.EXPECT().Name().Return("Gain")
	gain.EXPECT().Kind().Return(nodemap.KindOther)
	gain.EXPECT().IsImplemented().Return(true, nil).Once()
	gain.EXPECT().SelectedFeatures().Return(nil, nil).Once()
	gain.EXPECT().SelectingFeatures().Return(nil, nil).Once()

	root := mocks.NewMockNode(t)
	a := mocks.NewMockNode(t)

	root.EXPECT().Name().Return("Root")
	root.EXPECT().Kind().Return(nodemap.KindCategory)
	root.EXPECT().IsImplemented().Return(true, nil).Once()
	root.EXPECT().SelectedFeatures().Return(nil, nil).Once()
	root.EXPECT().Children().Return([]nodemap.Node{a}, nil).Once()

	a.EXPECT().Name().Return("A")
	a.EXPECT().Kind().Return(nodemap.KindCategory)
	a.EXPECT().IsImplemented().Return(true, nil).Once()
	a.EXPECT().SelectedFeatures().Return(nil, nil).Once()
	a.EXPECT().Children().Return([]nodemap.Node{root, gain, a}, nil).Once()

	occs, err := walker.New(walker.DefaultConfig()).Walk(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gain"}, strs(occs))
}

func TestWalkQueryFailureIsAtomic(t *testing.T) {
	boom := errors.New("device disconnected")

	width := mocks.NewMockNode(t)
	width.EXPECT().Name().Return("Width")
	width.EXPECT().Kind().Return(nodemap.KindInteger)
	width.EXPECT().IsImplemented().Return(true, nil)
	width.EXPECT().SelectedFeatures().Return(nil, nil)
	width.EXPECT().SelectingFeatures().Return(nil, nil)
	width.EXPECT().Visibility().Return(nodemap.VisibilityBeginner).Maybe()

	height := mocks.NewMockNode(t)
	height.EXPECT().Name().Return("Height")
	height.EXPECT().IsImplemented().Return(false, boom).Once()

	root := mocks.NewMockNode(t)
	root.EXPECT().Name().Return("Root")
	root.EXPECT().Kind().Return(nodemap.KindCategory)
	root.EXPECT().IsImplemented().Return(true, nil)
	root.EXPECT().SelectedFeatures().Return(nil, nil)
	root.EXPECT().Children().Return([]nodemap.Node{width, height}, nil).Once()

	rec := &recorder{}
	cfg := walker.DefaultConfig()
	cfg.Trace = rec

	occs, err := walker.New(cfg).Walk(context.Background(), root)
	assert.Nil(t, occs)
	assert.ErrorIs(t, err, boom)

	var qe *walker.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "Height", qe.Node)
	assert.Equal(t, "IsImplemented", qe.Op)

	require.NotEmpty(t, rec.events)
	last := rec.events[len(rec.events)-1]
	assert.Equal(t, log.ActionError, last.Action)
	assert.Contains(t, last.Error, "device disconnected")
}

func TestWalkSelectorQueryFailure(t *testing.T) {
	boom := errors.New("register read timeout")

	sel := mocks.NewMockNode(t)
	sel.EXPECT().Name().Return("LineSelector")
	sel.EXPECT().Kind().Return(nodemap.KindInteger)
	sel.EXPECT().IntRange().Return(nodemap.IntRange{}, boom).Once()

	mode := mocks.NewMockNode(t)
	mode.EXPECT().Name().Return("LineMode").Maybe()
	mode.EXPECT().SelectingFeatures().Return([]nodemap.Node{sel}, nil).Once()

	occs, err := walker.New(walker.DefaultConfig()).Resolve(mode)
	assert.Nil(t, occs)
	assert.ErrorIs(t, err, boom)

	var qe *walker.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "LineSelector", qe.Node)
	assert.Equal(t, "IntRange", qe.Op)
}

func TestWalkTrace(t *testing.T) {
	m := loadCamera(t)
	rec := &recorder{}

	cfg := walker.DefaultConfig()
	cfg.Group = "cam"
	cfg.Trace = rec
	_, err := walker.New(cfg).WalkMap(context.Background(), m, "Root")
	require.NoError(t, err)

	require.NotEmpty(t, rec.events)
	first, last := rec.events[0], rec.events[len(rec.events)-1]
	assert.Equal(t, log.ActionWalkStart, first.Action)
	assert.Equal(t, "Root", first.Node)
	assert.Equal(t, log.ActionWalkEnd, last.Action)
	assert.Equal(t, len(cameraOccurrences), last.Count)

	reasons := map[string]log.Reason{}
	emits := map[string]log.Event{}
	for _, e := range rec.events {
		assert.Equal(t, first.WalkID, e.WalkID)
		assert.Equal(t, "cam", e.Group)
		switch e.Action {
		case log.ActionSkip:
			reasons[e.Node] = e.Reason
		case log.ActionEmit:
			emits[e.Node] = e
		}
	}

	assert.Equal(t, log.ReasonNoValue, reasons["DeviceReset"])
	assert.Equal(t, log.ReasonNoValue, reasons["DeviceRegistersStreamingStart"])
	assert.Equal(t, log.ReasonNotImplemented, reasons["TestPattern"])
	assert.Equal(t, log.ReasonNotImplemented, reasons["SequencerControl"])
	assert.Equal(t, log.ReasonSelector, reasons["LineSelector"])
	assert.Equal(t, log.ReasonSelector, reasons["GainSelector"])

	lut := emits["LUTValue"]
	assert.Equal(t, 6, lut.Count)
	assert.Equal(t, 6, lut.Combinations)
	assert.Equal(t, []string{"LUTSelector", "LUTIndex"}, lut.Selectors)

	gain := emits["Gain"]
	assert.Equal(t, 1, gain.Count)
	assert.Equal(t, 1, gain.Combinations)
}
