package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/tevino/abool/v2"

	"github.com/vic/golambda/pkg/lambda"
)

// Session evaluates one line at a time and writes results to out and
// errors to errOut. Interrupt may be called from another goroutine.
type Session struct {
	interp *lambda.Interpreter
	out    io.Writer
	errOut io.Writer

	busy   *abool.AtomicBool
	mu     sync.Mutex
	cancel context.CancelFunc

	evaluated bool
	failures  int

	result  func(a ...interface{}) string
	failure func(a ...interface{}) string
	info    func(a ...interface{}) string
}

func NewSession(cfg *Config, out, errOut io.Writer) *Session {
	colors := func(attr color.Attribute) func(a ...interface{}) string {
		c := color.New(attr)
		if !cfg.Color {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return &Session{
		interp:  lambda.NewInterpreter(cfg.Options()),
		out:     out,
		errOut:  errOut,
		busy:    abool.New(),
		result:  colors(color.FgGreen),
		failure: colors(color.FgRed),
		info:    colors(color.FgBlue),
	}
}

// Failures counts lines that ended in an error.
func (s *Session) Failures() int {
	return s.failures
}

// Eval handles one input line and reports whether the user asked to quit.
func (s *Session) Eval(ctx context.Context, line string) (quit bool) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case strings.EqualFold(line, "exit"):
		return true
	case strings.HasPrefix(line, ":"):
		s.command(line)
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.busy.Set()
	term, err := s.interp.Interpret(ctx, line)
	s.busy.UnSet()
	s.evaluated = true

	if err != nil {
		s.failures++
		fmt.Fprintln(s.errOut, s.failure("Error: "+err.Error()))
		return false
	}
	fmt.Fprintln(s.out, "Result:", s.result(lambda.Render(term)))
	return false
}

// Interrupt cancels the reduction in progress, if any, and reports
// whether there was one.
func (s *Session) Interrupt() bool {
	if !s.busy.IsSet() {
		return false
	}
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	return true
}

func (s *Session) command(line string) {
	switch strings.ToLower(line) {
	case ":stats":
		if !s.evaluated {
			fmt.Fprintln(s.out, s.info("nothing evaluated yet"))
			return
		}
		st := s.interp.Stats()
		fmt.Fprintln(s.out, s.info(fmt.Sprintf("steps: %d, contractions: %d", st.Steps, st.Contractions)))
	case ":trace":
		trace := s.interp.Trace()
		if trace == nil {
			fmt.Fprintln(s.out, s.info("tracing is off; set trace in the config or pass -t"))
			return
		}
		for _, ev := range trace {
			fmt.Fprintf(s.out, "%4d  %s\n", ev.Step, lambda.Render(ev.Term))
		}
	default:
		fmt.Fprintln(s.errOut, s.failure("unknown command. Type exit to quit."))
	}
}

// RunBatch evaluates r line by line until EOF or "exit".
func (s *Session) RunBatch(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if s.Eval(ctx, scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}
