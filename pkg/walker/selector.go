package walker

import (
	"fmt"
	"math"

	"github.com/featwalk/featwalk/pkg/nodemap"
)

// resolution is the outcome of expanding one feature.
type resolution struct {
	occurrences  []Occurrence
	selectors    []string
	combinations int
}

// Resolve expands node over the candidate values of its selecting features
// and applies the direct-occurrence policy. A node without selectors, or
// whose selectors are all excluded, resolves to one direct occurrence.
func (w *Walker) Resolve(node nodemap.Node) ([]Occurrence, error) {
	selectors, err := node.SelectingFeatures()
	if err != nil {
		return nil, queryErr(node.Name(), "SelectingFeatures", err)
	}
	res, err := w.resolve(node, selectors)
	if err != nil {
		return nil, err
	}
	return res.occurrences, nil
}

func (w *Walker) resolve(node nodemap.Node, selectors []nodemap.Node) (resolution, error) {
	var active []nodemap.Node
	for _, s := range selectors {
		if !w.cfg.Filter.excludesSelector(s.Name()) {
			active = append(active, s)
		}
	}
	direct := Occurrence{Target: node}
	if len(active) == 0 {
		return resolution{occurrences: []Occurrence{direct}}, nil
	}

	res := resolution{selectors: make([]string, len(active))}
	dims := make([][]Assignment, len(active))
	for i, s := range active {
		res.selectors[i] = s.Name()
		values, err := w.candidates(node, s)
		if err != nil {
			return resolution{}, err
		}
		dims[i] = make([]Assignment, len(values))
		for j, v := range values {
			dims[i][j] = Assignment{Selector: s, Value: v}
		}
	}

	tuples, err := Product(dims, w.cfg.MaxCombinations)
	if err != nil {
		return resolution{}, fmt.Errorf("%s: %w", node.Name(), err)
	}
	res.combinations = len(tuples)

	if w.cfg.Policy == DirectOnSingleCombination && len(tuples) <= 1 {
		res.occurrences = []Occurrence{direct}
		return res, nil
	}

	res.occurrences = make([]Occurrence, 0, len(tuples)+1)
	for _, t := range tuples {
		res.occurrences = append(res.occurrences, Occurrence{Target: node, Assignments: t})
	}
	if w.cfg.Policy == DirectOnSingleSelector && len(active) == 1 {
		res.occurrences = append(res.occurrences, direct)
	}
	return res, nil
}

// candidates lists the values a selector can take.
func (w *Walker) candidates(target, sel nodemap.Node) ([]Value, error) {
	switch sel.Kind() {
	case nodemap.KindInteger:
		rng, err := sel.IntRange()
		if err != nil {
			return nil, queryErr(sel.Name(), "IntRange", err)
		}
		ints, err := intCandidates(rng, w.cfg.Filter.MaxIntSelectorValue, w.cfg.MaxCombinations)
		if err != nil {
			return nil, &SelectorError{Target: target.Name(), Selector: sel.Name(), Err: err}
		}
		values := make([]Value, len(ints))
		for i, v := range ints {
			values[i] = IntValue(v)
		}
		return values, nil

	case nodemap.KindEnumeration:
		entries, err := sel.EnumEntries()
		if err != nil {
			return nil, queryErr(sel.Name(), "EnumEntries", err)
		}
		var values []Value
		for _, e := range entries {
			if e.Implemented {
				values = append(values, SymbolValue(e.Symbolic))
			}
		}
		return values, nil

	default:
		return nil, nil
	}
}

// intCandidates returns min, min+inc, ... up to max (or maxValue when lower).
// Distances are computed in uint64 so wide ranges cannot overflow.
func intCandidates(rng nodemap.IntRange, maxValue int64, limit int) ([]int64, error) {
	if rng.Inc <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIncrement, rng.Inc)
	}
	hi := rng.Max
	if maxValue > 0 && hi > maxValue {
		hi = maxValue
	}
	if rng.Min > hi {
		return nil, nil
	}

	steps := (uint64(hi) - uint64(rng.Min)) / uint64(rng.Inc)
	if steps >= math.MaxInt32 || (limit > 0 && steps >= uint64(limit)) {
		return nil, ErrTooManyCombinations
	}
	count := steps + 1

	out := make([]int64, count)
	for i := range out {
		out[i] = int64(uint64(rng.Min) + uint64(i)*uint64(rng.Inc))
	}
	return out, nil
}
