package walker

import (
	"slices"
	"strings"
)

// ProxyMaxIntSelectorValue is the largest integer selector value the proxy
// layer exposes.
const ProxyMaxIntSelectorValue = 16

// Filter removes nodes from a walk. The zero Filter removes nothing.
type Filter struct {
	// ExcludeFeatures lists feature names that are never emitted.
	ExcludeFeatures []string

	// ExcludeCategories lists categories whose subtree is not visited.
	ExcludeCategories []string

	// ExcludeCategorySuffixes excludes categories whose name ends with any
	// of the suffixes.
	ExcludeCategorySuffixes []string

	// ExcludeSelectors lists selectors that are ignored during expansion.
	ExcludeSelectors []string

	// HideInvisible skips features with invisible visibility.
	HideInvisible bool

	// OnlyFeature, when set, restricts output to the feature of that name.
	OnlyFeature string

	// MaxIntSelectorValue drops integer selector values above it when > 0.
	MaxIntSelectorValue int64
}

// ProxyFilter returns the exclusions applied by the proxy layer. Comparing a
// walk filtered this way against the published catalog reports only
// unintended drift.
func ProxyFilter() Filter {
	return Filter{
		ExcludeFeatures: []string{
			"PixelFormat",
			"AcquisitionFrameRateEnable",
			"AcquisitionFrameRate",
			"AcquisitionFrameRateAbs",
			"UserSetLoad",
			"UserSetSave",
			"TriggerSoftware",
			"DeviceReset",
			"DeviceFeaturePersistenceStart",
			"DeviceFeaturePersistenceEnd",
			"DeviceRegistersStreamingStart",
			"DeviceRegistersStreamingEnd",
		},
		ExcludeCategories: []string{
			"ChunkData",
			"FileAccessControl",
			"EventControl",
			"SequenceControl",
			"SequencerControl",
			"MultipleROI",
		},
		ExcludeCategorySuffixes: []string{"EventData"},
		ExcludeSelectors:        []string{"DeviceLinkSelector"},
		HideInvisible:           true,
		MaxIntSelectorValue:     ProxyMaxIntSelectorValue,
	}
}

func (f *Filter) excludesCategory(name string) bool {
	if slices.Contains(f.ExcludeCategories, name) {
		return true
	}
	for _, suffix := range f.ExcludeCategorySuffixes {
		if suffix != "" && strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func (f *Filter) excludesSelector(name string) bool {
	return slices.Contains(f.ExcludeSelectors, name)
}
