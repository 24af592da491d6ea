package lambda

import "fmt"

// Term represents a lambda calculus term.
// The set of variants is closed: Var, Abs and App.
type Term interface {
	String() string
	term()
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (Var) term() {}

func (v Var) String() string {
	return v.Name
}

// Abs represents an abstraction (lambda).
type Abs struct {
	Arg  string
	Body Term
}

func (Abs) term() {}

func (a Abs) String() string {
	return fmt.Sprintf("(λ%s.%s)", a.Arg, a.Body)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (App) term() {}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// Render returns the fully parenthesized display form of t.
func Render(t Term) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// Equal reports whether a and b are syntactically identical.
// Bound names must match too; (λx.x) and (λy.y) are not Equal.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case Abs:
		y, ok := b.(Abs)
		return ok && x.Arg == y.Arg && Equal(x.Body, y.Body)
	case App:
		y, ok := b.(App)
		return ok && Equal(x.Fun, y.Fun) && Equal(x.Arg, y.Arg)
	case nil:
		return b == nil
	default:
		panic(fmt.Sprintf("lambda: unknown term %T", a))
	}
}

// Size returns the number of nodes in t.
func Size(t Term) int {
	switch v := t.(type) {
	case Var:
		return 1
	case Abs:
		return 1 + Size(v.Body)
	case App:
		return 1 + Size(v.Fun) + Size(v.Arg)
	default:
		return 0
	}
}
