// Package walker enumerates the configurable features of a node map.
//
// A Walker performs a breadth-first traversal from a root category and emits
// one Occurrence per concrete, addressable feature. Features that depend on
// selector features are expanded into one occurrence per combination of
// selector values:
//
//	Root
//	├── ImageFormatControl
//	│   └── Width                   -> Width
//	└── DigitalIOControl
//	    ├── LineSelector [1..3]     (selector, never emitted on its own)
//	    └── LineMode                -> LineMode[LineSelector=1]
//	                                   LineMode[LineSelector=2]
//	                                   LineMode[LineSelector=3]
//
// Categories, commands, registers and selectors are never emitted. The walk
// is synchronous and single-threaded; the first node map error aborts it and
// no partial result is returned.
//
// Every step can be recorded to a trace (see package log) so that missing
// features can be explained after the fact.
package walker
