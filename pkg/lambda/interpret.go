package lambda

import "context"

type Options struct {
	// Strict rejects characters that start no token instead of dropping them.
	Strict       bool
	MaxSteps     int
	DetectCycles bool
	// TraceCapacity records up to this many steps per call when positive.
	TraceCapacity int
}

// Interpreter runs text through Tokenize, Parse and Normalize.
// It keeps the stats and trace of the last call, so it must not be
// shared between goroutines.
type Interpreter struct {
	opts    Options
	reducer *Reducer
}

func NewInterpreter(opts Options) *Interpreter {
	r := NewReducer()
	r.MaxSteps = opts.MaxSteps
	r.DetectCycles = opts.DetectCycles
	if opts.TraceCapacity > 0 {
		r.EnableTrace(opts.TraceCapacity)
	}
	return &Interpreter{opts: opts, reducer: r}
}

func (ip *Interpreter) Interpret(ctx context.Context, text string) (Term, error) {
	var tokens []Token
	if ip.opts.Strict {
		var err error
		if tokens, err = TokenizeStrict(text); err != nil {
			return nil, err
		}
	} else {
		tokens = Tokenize(text)
	}

	term, err := ParseTokens(tokens)
	if err != nil {
		return nil, err
	}
	debugf("parsed %s", term)
	return ip.reducer.Normalize(ctx, term)
}

func (ip *Interpreter) Stats() Stats {
	return ip.reducer.Stats()
}

func (ip *Interpreter) Trace() []TraceEvent {
	return ip.reducer.TraceSnapshot()
}

// Interpret parses text and reduces it without any step bound.
func Interpret(text string) (Term, error) {
	term, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Reduce(term), nil
}
