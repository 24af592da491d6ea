package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/golambda/pkg/lambda"
)

type TestCase struct {
	Name   string
	Input  string
	Output string
}

const testTemplate = `package gentests

import _ "embed"
import "testing"
import "github.com/vic/golambda/cmd/gentests/helper"

//go:embed input.lc
var input string

//go:embed output.lc
var output string

func Test_%s_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "%s", input, output)
}
`

func main() {
	tests := []TestCase{
		// Identity
		{"001_id", "λx.x", "λy.y"},
		{"002_id_id", "(λx.x) (λy.y)", "λz.z"},

		// K Combinator (Erasure)
		{"003_k_1", "(λx.λy.x) a b", "a"},
		{"004_k_2", "(λx.λy.y) a b", "b"},
		{"005_erase_complex", "(λx.λy.x) a ((λz.z) b)", "a"},

		// S Combinator
		{"006_s_1", "(λx.λy.λz.(x z (y z))) (λa.λb.a) (λc.λd.c) e", "e"},
		{"007_s_2", "(λx.λy.λz.(x z (y z))) (λa.λb.b) (λc.λd.c) e", "λd.e"},

		// Church Numerals
		{"010_zero", "(λf.λx.x) f x", "x"},
		{"011_one", "(λf.λx.(f x)) f x", "f x"},
		{"012_two", "(λf.λx.(f (f x))) f x", "f (f x)"},
		{"013_succ_0", "(λn.λf.λx.(f (n f x))) (λf.λx.x) f x", "f x"},
		{"014_succ_1", "(λn.λf.λx.(f (n f x))) (λf.λx.(f x)) f x", "f (f x)"},
		{"015_add_1_1", "(λm.λn.λf.λx.(m f (n f x))) (λf.λx.(f x)) (λf.λx.(f x)) f x", "f (f x)"},
		{"016_mul_2_2", "(λm.λn.λf.(m (n f))) (λf.λx.(f (f x))) (λf.λx.(f (f x))) f x", "f (f (f (f x)))"},

		// Logic
		{"020_true", "(λx.λy.x) a b", "a"},
		{"021_false", "(λx.λy.y) a b", "b"},
		{"022_not_true", "(λb.(b (λx.λy.y) (λx.λy.x))) (λx.λy.x) a b", "b"},
		{"023_not_false", "(λb.(b (λx.λy.y) (λx.λy.x))) (λx.λy.y) a b", "a"},
		{"024_and_true_true", "(λp.λq.(p q p)) (λx.λy.x) (λx.λy.x) a b", "a"},
		{"025_and_true_false", "(λp.λq.(p q p)) (λx.λy.x) (λx.λy.y) a b", "b"},

		// Pairs
		{"030_pair_fst", "(λp.(p (λx.λy.x))) ((λx.λy.λf.(f x y)) a b)", "a"},
		{"031_pair_snd", "(λp.(p (λx.λy.y))) ((λx.λy.λf.(f x y)) a b)", "b"},

		// Sharing
		{"051_share_app", "(λf.(f (f x))) (λy.y)", "x"},
		{"070_share_complex", "(λx.(x (x a))) (λy.y)", "a"},
		{"071_erase_shared", "(λx.λy.y) ((λz.z) a) b", "b"},
		{"072_self_app", "(λx.(x x)) (λy.y)", "λy.y"},

		// Nested Lambdas
		{"080_nested_1", "λx.λy.λz.(x y z)", "λx.λy.λz.(x y z)"},
		{"081_nested_app", "(λx.λy.(x y)) a b", "a b"},

		// Capture avoidance: the free variable must stay free
		{"085_capture", "(λx.λy.x) y", "λz.y"},
		{"086_capture_app", "(λf.λx.(f x)) x", "λz.(x z)"},

		// Free variables
		{"090_free_1", "x", "x"},
		{"091_free_app", "x y", "x y"},
		{"092_free_abs", "λy.(x y)", "λy.(x y)"},

		// Mixed
		{"100_mixed_1", "(λx.x) ((λy.y) a)", "a"},
	}

	baseDir := "cmd/gentests/generated"
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", baseDir, err)
		os.Exit(1)
	}

	generated := 0
	for _, tc := range tests {
		dir := filepath.Join(baseDir, tc.Name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("Error creating %s: %v\n", dir, err)
			continue
		}

		// Normalize Input
		inTerm, err := lambda.Parse(tc.Input)
		if err != nil {
			fmt.Printf("Error parsing input for %s: %v\n", tc.Name, err)
			continue
		}

		// Normalize Output
		outTerm, err := lambda.Parse(tc.Output)
		if err != nil {
			fmt.Printf("Error parsing output for %s: %v\n", tc.Name, err)
			continue
		}

		testGo := fmt.Sprintf(testTemplate, tc.Name, tc.Name)

		os.WriteFile(filepath.Join(dir, "input.lc"), []byte(inTerm.String()), 0644)
		os.WriteFile(filepath.Join(dir, "output.lc"), []byte(outTerm.String()), 0644)
		os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0644)
		generated++
	}

	fmt.Printf("Generated %d tests\n", generated)
}
