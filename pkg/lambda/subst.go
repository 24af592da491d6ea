package lambda

import (
	"fmt"
	"strconv"

	"github.com/ahrtr/gocontainer/set"
	"github.com/edwingeng/deque"
)

// Substitute replaces the free occurrences of name in t with value.
//
// Binders that would capture a free variable of value are renamed first,
// so (λy.x)[x := y] is (λy1.y), not (λy.y). Subtrees without a free
// occurrence of name are returned as they are.
func Substitute(t Term, name string, value Term) Term {
	return substitute(t, name, value, FreeVars(value))
}

func substitute(t Term, name string, value Term, valueFree set.Interface) Term {
	switch v := t.(type) {
	case Var:
		if v.Name == name {
			return value
		}
		return v
	case Abs:
		if v.Arg == name || !occursFree(name, v.Body) {
			return v
		}
		if valueFree.Contains(v.Arg) {
			fresh := freshName(v.Arg, v.Body, value)
			debugf("rename %s -> %s to avoid capture", v.Arg, fresh)
			body := Substitute(v.Body, v.Arg, Var{Name: fresh})
			return Abs{Arg: fresh, Body: substitute(body, name, value, valueFree)}
		}
		return Abs{Arg: v.Arg, Body: substitute(v.Body, name, value, valueFree)}
	case App:
		return App{
			Fun: substitute(v.Fun, name, value, valueFree),
			Arg: substitute(v.Arg, name, value, valueFree),
		}
	default:
		panic(fmt.Sprintf("lambda: unknown term %T", t))
	}
}

// FreeVars returns the names occurring free in t.
func FreeVars(t Term) set.Interface {
	free := set.New()
	collectFree(t, map[string]int{}, free)
	return free
}

func collectFree(t Term, bound map[string]int, free set.Interface) {
	switch v := t.(type) {
	case Var:
		if bound[v.Name] == 0 {
			free.Add(v.Name)
		}
	case Abs:
		bound[v.Arg]++
		collectFree(v.Body, bound, free)
		bound[v.Arg]--
	case App:
		collectFree(v.Fun, bound, free)
		collectFree(v.Arg, bound, free)
	}
}

func occursFree(name string, t Term) bool {
	switch v := t.(type) {
	case Var:
		return v.Name == name
	case Abs:
		if v.Arg == name {
			return false
		}
		return occursFree(name, v.Body)
	case App:
		return occursFree(name, v.Fun) || occursFree(name, v.Arg)
	default:
		return false
	}
}

// names collects every variable and binder name used in terms.
func names(terms ...Term) set.Interface {
	seen := set.New()
	queue := deque.NewDeque()
	for _, t := range terms {
		queue.PushBack(t)
	}
	for queue.Len() != 0 {
		t := queue.Front().(Term)
		queue.PopFront()

		switch v := t.(type) {
		case Var:
			seen.Add(v.Name)
		case Abs:
			seen.Add(v.Arg)
			queue.PushBack(v.Body)
		case App:
			queue.PushBack(v.Fun)
			queue.PushBack(v.Arg)
		}
	}
	return seen
}

// freshName picks base followed by the smallest positive integer that
// does not clash with any name used in terms.
func freshName(base string, terms ...Term) string {
	used := names(terms...)
	for i := 1; ; i++ {
		candidate := base + strconv.Itoa(i)
		if !used.Contains(candidate) {
			return candidate
		}
	}
}
