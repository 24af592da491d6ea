package lambda

import (
	"context"
	"errors"
	"testing"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
	}{
		{"identity", "(λx.x) y", "y"},
		{"k_combinator", "(λx.λy.x) a b", "a"},
		{"already_normal", "λx.x", "(λx.x)"},
		{"free_app", "x y z", "((x y) z)"},
		{"s_k_k", "(λx.λy.λz.(x z (y z))) (λa.λb.a) (λc.λd.c) e", "e"},
		{"church_one", "(λf.λx.(f x)) f x", "(f x)"},
		{"church_two", "(λf.λx.(f (f x))) f x", "(f (f x))"},
		{"succ_one", "(λn.λf.λx.(f (n f x))) (λf.λx.(f x))", "(λf.(λx.(f (f x))))"},
		{"not_true", "(λb.(b (λx.λy.y) (λx.λy.x))) (λx.λy.x) a b", "b"},
		{"pair_fst", "(λp.(p (λx.λy.x))) ((λx.λy.λf.(f x y)) a b)", "a"},
		{"shared_arg", "(λf.(f (f x))) (λy.y)", "x"},
		{"under_lambda", "λz.((λx.x) z)", "(λz.z)"},
		{"capture", "(λx.λy.x) y", "(λy1.y)"},
		{"capture_app", "(λf.λx.(f x)) x", "(λx1.(x x1))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(mustParse(t, tt.input))
			if Render(got) != tt.output {
				t.Errorf("%s: expected %s, got %s", tt.input, tt.output, Render(got))
			}
		})
	}
}

func TestStep(t *testing.T) {
	// The outer application is not a redex, so both sides step at once.
	term := mustParse(t, "((λx.x) a) ((λy.y) b)")
	if got := Render(Step(term)); got != "(a b)" {
		t.Errorf("expected (a b), got %s", got)
	}

	// A redex is contracted as a whole; its argument is not stepped first.
	term = mustParse(t, "(λx.x) ((λy.y) b)")
	if got := Render(Step(term)); got != "((λy.y) b)" {
		t.Errorf("expected ((λy.y) b), got %s", got)
	}

	if got := Step(v("x")); !Equal(got, v("x")) {
		t.Errorf("variable should not change, got %v", got)
	}
}

func TestNormalFormIsFixedPoint(t *testing.T) {
	for _, input := range []string{
		"(λx.λy.x) a b",
		"(λn.λf.λx.(f (n f x))) (λf.λx.(f x))",
		"(λf.λx.(f x)) x",
	} {
		n := Reduce(mustParse(t, input))
		if again := Reduce(n); !Equal(again, n) {
			t.Errorf("%s: reducing %v again gave %v", input, n, again)
		}
		if !Equal(Step(n), n) {
			t.Errorf("%s: normal form %v still steps", input, n)
		}
	}
}

// Ω steps to itself, which is a fixed point of the driver.
func TestOmegaStopsAtFixedPoint(t *testing.T) {
	omega := mustParse(t, "(λx.(x x)) (λx.(x x))")
	r := NewReducer()
	got, err := r.Normalize(context.Background(), omega)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(got, omega) {
		t.Errorf("expected %v, got %v", omega, got)
	}
	if r.Stats().Steps != 0 {
		t.Errorf("expected no recorded steps, got %d", r.Stats().Steps)
	}
}

func TestMaxSteps(t *testing.T) {
	growing := mustParse(t, "(λx.(x x x)) (λx.(x x x))")
	r := NewReducer()
	r.MaxSteps = 20

	_, err := r.Normalize(context.Background(), growing)
	var de *DivergenceError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DivergenceError, got %v", err)
	}
	if de.Steps != 20 {
		t.Errorf("expected 20 steps, got %d", de.Steps)
	}

	// A term that needs exactly MaxSteps steps still normalizes.
	r.MaxSteps = 2
	got, err := r.Normalize(context.Background(), mustParse(t, "(λx.λy.x) a b"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Render(got) != "a" {
		t.Errorf("expected a, got %v", got)
	}
}

func TestDetectCyclesLeavesNormalizingTermsAlone(t *testing.T) {
	r := NewReducer()
	r.DetectCycles = true
	got, err := r.Normalize(context.Background(), mustParse(t, "(λx.λy.λz.(x z (y z))) (λa.λb.a) (λc.λd.c) e"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Render(got) != "e" {
		t.Errorf("expected e, got %v", got)
	}
}

func TestSeenTerms(t *testing.T) {
	seen := seenTerms{}
	if seen.add(mustParse(t, "λx.(x y)")) {
		t.Fatal("first term reported as seen")
	}
	if seen.add(mustParse(t, "λy.(y x)")) {
		t.Fatal("different term reported as seen")
	}
	if !seen.add(mustParse(t, "λx.(x y)")) {
		t.Fatal("repeated term not detected")
	}
}

func TestNormalizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReducer().Normalize(ctx, mustParse(t, "(λx.x) y"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStatsAndTrace(t *testing.T) {
	r := NewReducer()
	r.EnableTrace(2)

	got, err := r.Normalize(context.Background(), mustParse(t, "(λn.λf.λx.(f (n f x))) (λf.λx.(f x))"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Logf("succ 1 → %v", got)

	stats := r.Stats()
	if stats.Steps != 3 || stats.Contractions != 3 {
		t.Errorf("expected 3 steps and 3 contractions, got %+v", stats)
	}

	trace := r.TraceSnapshot()
	if len(trace) != 2 {
		t.Fatalf("expected 2 trace events, got %d", len(trace))
	}
	if trace[0].Step != 1 || Render(trace[0].Term) != "(λf.(λx.(f (((λf.(λx.(f x))) f) x))))" {
		t.Errorf("unexpected first event: %d %v", trace[0].Step, trace[0].Term)
	}

	r.DisableTrace()
	if r.TraceSnapshot() != nil {
		t.Errorf("expected no trace after DisableTrace")
	}
}
