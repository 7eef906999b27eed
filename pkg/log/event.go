package log

import (
	"time"

	"github.com/featwalk/featwalk/pkg/nodemap"
)

// Event is one step of a walk.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// WalkID identifies the walk (UUID). All events of one walk share it.
	WalkID string `cbor:"2,keyasint"`

	// Group is the catalog group being walked (e.g. "cam", "stream").
	Group string `cbor:"3,keyasint,omitempty"`

	// Action is what the walker did.
	Action Action `cbor:"4,keyasint"`

	// Node is the node the action applies to.
	Node string `cbor:"5,keyasint,omitempty"`

	// Kind is the node's kind.
	Kind nodemap.Kind `cbor:"6,keyasint,omitempty"`

	// Reason explains a skip.
	Reason Reason `cbor:"7,keyasint,omitempty"`

	// Count is action specific: children enqueued for ActionExpand,
	// occurrences for ActionEmit and ActionWalkEnd.
	Count int `cbor:"8,keyasint,omitempty"`

	// Selectors names the selecting features used for an expansion.
	Selectors []string `cbor:"9,keyasint,omitempty"`

	// Combinations is the selector product size for ActionEmit.
	Combinations int `cbor:"10,keyasint,omitempty"`

	// Error is the failure message for ActionError.
	Error string `cbor:"11,keyasint,omitempty"`

	// Duration is the walk duration for ActionWalkEnd.
	Duration time.Duration `cbor:"12,keyasint,omitempty"`
}

// Action is what the walker did with a node.
type Action uint8

const (
	// ActionWalkStart marks the beginning of a walk at Node.
	ActionWalkStart Action = 0
	// ActionWalkEnd marks successful completion.
	ActionWalkEnd Action = 1
	// ActionExpand indicates a category whose children were enqueued.
	ActionExpand Action = 2
	// ActionSkip indicates a node that produced nothing (see Reason).
	ActionSkip Action = 3
	// ActionEmit indicates a feature that produced occurrences.
	ActionEmit Action = 4
	// ActionError indicates the walk aborted.
	ActionError Action = 5
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionWalkStart:
		return "START"
	case ActionWalkEnd:
		return "END"
	case ActionExpand:
		return "EXPAND"
	case ActionSkip:
		return "SKIP"
	case ActionEmit:
		return "EMIT"
	case ActionError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Reason explains why a node was skipped.
type Reason uint8

const (
	ReasonNone Reason = iota
	// ReasonNotImplemented: the node is not implemented on this device.
	ReasonNotImplemented
	// ReasonSelector: the node selects other features and only appears as
	// part of their selector assignments.
	ReasonSelector
	// ReasonNoValue: command and register nodes have no enumerable value.
	ReasonNoValue
	// ReasonExcludedFeature: the feature name is on the exclusion list.
	ReasonExcludedFeature
	// ReasonExcludedCategory: the category is on the exclusion list.
	ReasonExcludedCategory
	// ReasonInvisible: the node is invisible and invisible nodes are hidden.
	ReasonInvisible
	// ReasonNotRequested: a single-feature filter is set to another feature.
	ReasonNotRequested
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNotImplemented:
		return "not-implemented"
	case ReasonSelector:
		return "selector"
	case ReasonNoValue:
		return "no-value"
	case ReasonExcludedFeature:
		return "excluded-feature"
	case ReasonExcludedCategory:
		return "excluded-category"
	case ReasonInvisible:
		return "invisible"
	case ReasonNotRequested:
		return "not-requested"
	default:
		return "unknown"
	}
}

// ParseAction parses an action name as printed by String.
func ParseAction(s string) (Action, bool) {
	for a := ActionWalkStart; a <= ActionError; a++ {
		if a.String() == s {
			return a, true
		}
	}
	return 0, false
}

// ParseReason parses a reason name as printed by String.
func ParseReason(s string) (Reason, bool) {
	for r := ReasonNone; r <= ReasonNotRequested; r++ {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}
