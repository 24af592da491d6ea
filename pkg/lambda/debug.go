package lambda

import (
	"log"
	"os"
)

var lambdaDebug = os.Getenv("LAMBDA_DEBUG") != ""

var debugLog = log.New(os.Stderr, "lambda: ", log.Lmicroseconds)

func debugf(format string, args ...any) {
	if !lambdaDebug {
		return
	}
	debugLog.Printf(format, args...)
}
