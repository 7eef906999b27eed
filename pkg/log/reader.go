package log

import (
	"errors"
	"io"
	"os"
	"time"
)

// Filter selects trace events. Zero-valued fields match everything.
type Filter struct {
	// WalkID filters by exact walk ID.
	WalkID string

	// Group filters by catalog group.
	Group string

	// Node filters by exact node name.
	Node string

	// Action filters by action.
	Action *Action

	// Reason filters skip events by reason.
	Reason *Reason

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time
}

// Match reports whether event satisfies every criterion of f.
func (f Filter) Match(event Event) bool {
	switch {
	case f.WalkID != "" && event.WalkID != f.WalkID:
		return false
	case f.Group != "" && event.Group != f.Group:
		return false
	case f.Node != "" && event.Node != f.Node:
		return false
	case f.Action != nil && event.Action != *f.Action:
		return false
	case f.Reason != nil && event.Reason != *f.Reason:
		return false
	case f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart):
		return false
	case f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd):
		return false
	}
	return true
}

// Reader streams events back from a trace file.
type Reader struct {
	r      io.ReadCloser
	next   func(*Event) error
	filter Filter
}

// NewReader opens a trace file and reads every event.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens a trace file and reads only events matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewStreamReader(f, filter), nil
}

// NewStreamReader reads events from r. Close closes r.
func NewStreamReader(r io.ReadCloser, filter Filter) *Reader {
	dec := NewDecoder(r)
	return &Reader{
		r:      r,
		next:   func(e *Event) error { return dec.Decode(e) },
		filter: filter,
	}
}

// Next returns the next matching event, or io.EOF at the end of the stream.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.next(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}
		if r.filter.Match(event) {
			return event, nil
		}
	}
}

// All drains the reader.
func (r *Reader) All() ([]Event, error) {
	var events []Event
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, e)
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.r.Close()
}
