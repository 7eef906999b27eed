// Package log provides the structured walk trace for featwalk.
//
// This package defines the Logger interface and Event type for capturing what
// the feature walker did with every node it dequeued: which categories it
// expanded, which nodes it skipped and why, and how many occurrences each
// feature produced. It is separate from operational logging (slog); the trace
// is a complete machine-readable record for answering "why is feature X
// missing from the enumeration?".
//
// # Basic Usage
//
// Callers configure tracing by providing a Logger implementation:
//
//	// For development: trace to console via slog
//	cfg.Trace = log.NewSlogAdapter(slog.Default())
//
//	// For later analysis: write to binary file
//	cfg.Trace, _ = log.NewFileLogger("cam.ftrace")
//
//	// Both: use MultiLogger
//	cfg.Trace = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys, usually
// with the .ftrace extension. The featwalk trace command reads them back with
// optional filtering.
package log
