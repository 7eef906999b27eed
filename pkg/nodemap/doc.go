// Package nodemap defines the read-only capability surface the feature walker
// needs from a device's hierarchical feature registry (the node map), and ships a
// static adapter backed by a definition file.
//
// # Node Map Hierarchy
//
// A node map is a tree of named nodes rooted at a category (conventionally
// "Root"). Categories group other nodes; every other node is a leaf with a
// value kind:
//
//	Root (Category)
//	├── ImageFormatControl (Category)
//	│   ├── Width (IntegerLeaf)
//	│   └── PixelFormat (EnumerationLeaf)
//	└── AnalogControl (Category)
//	    ├── GainSelector (EnumerationLeaf, selects Gain)
//	    └── Gain (OtherLeaf, selected by GainSelector)
//
// # Selectors
//
// A selector is a node whose current value decides which underlying value a
// dependent node refers to. The dependent lists its selectors through
// SelectingFeatures; the selector lists its dependents through SelectedFeatures.
//
// # Adapters
//
// Live adapters (camera SDK bindings) are supplied by callers. The Map type in
// this package is a static adapter built from a Definition, which can be
// loaded from YAML (LoadFile) or from a CBOR snapshot produced by Capture.
package nodemap
