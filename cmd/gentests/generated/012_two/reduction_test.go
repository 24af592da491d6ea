package gentests

import _ "embed"
import "testing"
import "github.com/vic/golambda/cmd/gentests/helper"

//go:embed input.lc
var input string

//go:embed output.lc
var output string

func Test_012_two_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "012_two", input, output)
}
