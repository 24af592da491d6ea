package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/vic/golambda/pkg/repl"
)

const usage = `usage: lambda [options] [FILE | -]

Without FILE, starts an interactive session. With FILE (or - for stdin),
evaluates each line and prints its normal form.

options:
  -c FILE  read configuration from FILE (default ~/.lambda.yaml if present)
  -e EXPR  evaluate EXPR and exit
  -n N     give up after N reduction steps
  -C       give up when a term repeats during reduction
  -s       reject characters that are not part of the syntax
  -t N     record the first N steps of each reduction (see :trace)
  -N       disable colors
  -h       show this help
`

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	opts, optind, err := getopt.Getopts(args, "c:e:n:Cst:Nh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "lambda: %v\n%s", err, usage)
		return 2
	}

	var configPath, expr string
	for _, opt := range opts {
		if opt.Option == 'c' {
			configPath = opt.Value
		}
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lambda: %v\n", err)
		return 1
	}

	for _, opt := range opts {
		switch opt.Option {
		case 'e':
			expr = opt.Value
		case 'n':
			if cfg.MaxSteps, err = strconv.Atoi(opt.Value); err != nil || cfg.MaxSteps < 0 {
				fmt.Fprintf(os.Stderr, "lambda: invalid -n value %q\n", opt.Value)
				return 2
			}
		case 'C':
			cfg.DetectCycles = true
		case 's':
			cfg.Strict = true
		case 't':
			if cfg.Trace, err = strconv.Atoi(opt.Value); err != nil || cfg.Trace < 0 {
				fmt.Fprintf(os.Stderr, "lambda: invalid -t value %q\n", opt.Value)
				return 2
			}
		case 'N':
			cfg.Color = false
		case 'h':
			fmt.Print(usage)
			return 0
		}
	}

	ctx := context.Background()
	rest := args[optind:]

	switch {
	case expr != "":
		return batch(ctx, cfg, strings.NewReader(expr))
	case len(rest) == 0:
		if err := repl.Run(ctx, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "lambda: %v\n", err)
			return 1
		}
		return 0
	case rest[0] == "-":
		return batch(ctx, cfg, os.Stdin)
	default:
		f, err := os.Open(rest[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			return 1
		}
		defer f.Close()
		return batch(ctx, cfg, f)
	}
}

func loadConfig(path string) (*repl.Config, error) {
	if path != "" {
		return repl.LoadConfig(path)
	}
	path = repl.DefaultConfigPath()
	if path == "" {
		return repl.DefaultConfig(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return repl.DefaultConfig(), nil
	}
	return repl.LoadConfig(path)
}

func batch(ctx context.Context, cfg *repl.Config, in io.Reader) int {
	s := repl.NewSession(cfg, os.Stdout, os.Stderr)
	if err := s.RunBatch(ctx, in); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return 1
	}
	if s.Failures() > 0 {
		return 1
	}
	return 0
}
