package gentests

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vic/golambda/pkg/lambda"
)

// stepLimit keeps a wrong expectation from hanging the suite.
const stepLimit = 10000

// Canonical renames bound variables to x0, x1, ... in binding order, so
// alpha-equivalent terms render identically. Free names are kept.
func Canonical(t lambda.Term) lambda.Term {
	bindings := make(map[string]string)
	var idx int
	var walk func(lambda.Term) lambda.Term
	walk = func(tt lambda.Term) lambda.Term {
		switch v := tt.(type) {
		case lambda.Var:
			if name, ok := bindings[v.Name]; ok {
				return lambda.Var{Name: name}
			}
			return v
		case lambda.Abs:
			canon := fmt.Sprintf("x%d", idx)
			idx++
			// shadowing: save old if any
			old, had := bindings[v.Arg]
			bindings[v.Arg] = canon
			body := walk(v.Body)
			if had {
				bindings[v.Arg] = old
			} else {
				delete(bindings, v.Arg)
			}
			return lambda.Abs{Arg: canon, Body: body}
		case lambda.App:
			return lambda.App{Fun: walk(v.Fun), Arg: walk(v.Arg)}
		default:
			return tt
		}
	}
	return walk(t)
}

func CheckLambdaReduction(t *testing.T, testName string, inputStr string, outputStr string) {
	expectedTerm, err := lambda.Parse(strings.TrimSpace(outputStr))
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}

	term, err := lambda.Parse(inputStr)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	r := lambda.NewReducer()
	r.MaxSteps = stepLimit

	start := time.Now()
	actualTerm, err := r.Normalize(context.Background(), term)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("%s: %v", testName, err)
	}

	normExpected := Canonical(expectedTerm)
	normActual := Canonical(actualTerm)
	if !lambda.Equal(normActual, normExpected) {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s", testName, inputStr, normExpected, normActual)
	}

	stats := r.Stats()
	t.Logf("%s: %d steps, %d contractions in %v", testName, stats.Steps, stats.Contractions, elapsed)
}
