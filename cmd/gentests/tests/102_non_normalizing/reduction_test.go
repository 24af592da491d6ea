package gentests

import (
	"context"
	_ "embed"
	"errors"
	"testing"

	"github.com/vic/golambda/pkg/lambda"
)

//go:embed input.lc
var input string

// The term grows by one application per step, so it never reaches a
// fixed point and no term repeats. Only the step cap can stop it.
func Test_102_non_normalizing_StepCap(t *testing.T) {
	term, err := lambda.Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	r := lambda.NewReducer()
	r.MaxSteps = 200
	r.DetectCycles = true
	r.EnableTrace(r.MaxSteps)

	_, err = r.Normalize(context.Background(), term)
	var de *lambda.DivergenceError
	if !errors.As(err, &de) {
		t.Fatalf("expected *lambda.DivergenceError, got %v", err)
	}
	if de.Reason == "term repeats" {
		t.Errorf("growing term reported as a cycle")
	}
	t.Logf("Non-normalizing term: %v", err)

	trace := r.TraceSnapshot()
	if len(trace) != r.MaxSteps {
		t.Fatalf("expected %d trace events, got %d", r.MaxSteps, len(trace))
	}
	for i := 1; i < len(trace); i++ {
		prev, cur := lambda.Size(trace[i-1].Term), lambda.Size(trace[i].Term)
		if cur <= prev {
			t.Errorf("step %d: size %d did not grow from %d", trace[i].Step, cur, prev)
		}
	}
}
