package lambda

import (
	"context"
	"fmt"
)

// DivergenceError is returned when a Reducer gives up on a term that
// looks like it has no normal form.
type DivergenceError struct {
	Steps  int
	Reason string
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("divergence suspected after %d steps: %s", e.Steps, e.Reason)
}

// Stats describes the last Normalize call.
type Stats struct {
	Steps        int // passes that changed the term
	Contractions int // redexes contracted over all passes
}

type TraceEvent struct {
	Step         int
	Contractions int
	Term         Term
}

// Reducer drives Step to a fixed point. The zero value reduces without
// any bound, like Reduce.
type Reducer struct {
	// MaxSteps fails the reduction once this many changing steps have
	// run and the term is still changing. Zero means no limit.
	MaxSteps int
	// DetectCycles fails the reduction when an intermediate term repeats.
	DetectCycles bool

	stats    Stats
	traceBuf []TraceEvent
	traceCap int
}

func NewReducer() *Reducer {
	return &Reducer{}
}

// EnableTrace records the first capacity steps of each Normalize call.
func (r *Reducer) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	r.traceCap = capacity
	r.traceBuf = make([]TraceEvent, 0, capacity)
}

func (r *Reducer) DisableTrace() {
	r.traceCap = 0
	r.traceBuf = nil
}

func (r *Reducer) TraceSnapshot() []TraceEvent {
	if r.traceCap == 0 {
		return nil
	}
	res := make([]TraceEvent, len(r.traceBuf))
	copy(res, r.traceBuf)
	return res
}

func (r *Reducer) Stats() Stats {
	return r.stats
}

func (r *Reducer) recordTrace(ev TraceEvent) {
	if r.traceCap == 0 || len(r.traceBuf) >= r.traceCap {
		return
	}
	r.traceBuf = append(r.traceBuf, ev)
}

// Normalize steps t until a step leaves it structurally unchanged.
// ctx is checked between steps.
func (r *Reducer) Normalize(ctx context.Context, t Term) (Term, error) {
	r.stats = Stats{}
	if r.traceCap > 0 {
		r.traceBuf = r.traceBuf[:0]
	}

	var seen seenTerms
	if r.DetectCycles {
		seen = seenTerms{}
		seen.add(t)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("reduction stopped after %d steps: %w", r.stats.Steps, err)
		}

		var n int
		next := step(t, &n)
		if n == 0 || Equal(next, t) {
			return t, nil
		}
		if r.MaxSteps > 0 && r.stats.Steps >= r.MaxSteps {
			return nil, &DivergenceError{
				Steps:  r.stats.Steps,
				Reason: fmt.Sprintf("no normal form within %d steps", r.MaxSteps),
			}
		}

		r.stats.Steps++
		r.stats.Contractions += n
		r.recordTrace(TraceEvent{Step: r.stats.Steps, Contractions: n, Term: next})
		debugf("step %d: %d contractions, size %d", r.stats.Steps, n, Size(next))

		if seen != nil && seen.add(next) {
			return nil, &DivergenceError{Steps: r.stats.Steps, Reason: "term repeats"}
		}
		t = next
	}
}

// Step performs one reduction pass over t.
//
// A redex is contracted as soon as it is reached. Both sides of any
// other application are stepped, and abstraction bodies are stepped.
func Step(t Term) Term {
	var n int
	return step(t, &n)
}

func step(t Term, n *int) Term {
	switch v := t.(type) {
	case Var:
		return v
	case Abs:
		return Abs{Arg: v.Arg, Body: step(v.Body, n)}
	case App:
		if fn, ok := v.Fun.(Abs); ok {
			*n++
			return Substitute(fn.Body, fn.Arg, v.Arg)
		}
		return App{Fun: step(v.Fun, n), Arg: step(v.Arg, n)}
	default:
		panic(fmt.Sprintf("lambda: unknown term %T", t))
	}
}

// Reduce returns the normal form of t. It may never return when t has no
// normal form.
func Reduce(t Term) Term {
	res, _ := NewReducer().Normalize(context.Background(), t)
	return res
}
