package lambda

import "github.com/segmentio/fasthash/fnv1a"

// Fingerprint hashes the structure and names of t. Equal terms have equal
// fingerprints; the converse only holds up to hash collisions.
func Fingerprint(t Term) uint64 {
	return addTerm(fnv1a.Init64, t)
}

func addTerm(h uint64, t Term) uint64 {
	switch v := t.(type) {
	case Var:
		h = fnv1a.AddString64(h, "v")
		h = fnv1a.AddString64(h, v.Name)
		// ";" ends the name: (ab c) and (a bc) must hash apart.
		return fnv1a.AddString64(h, ";")
	case Abs:
		h = fnv1a.AddString64(h, "λ")
		h = fnv1a.AddString64(h, v.Arg)
		h = fnv1a.AddString64(h, ".")
		return addTerm(h, v.Body)
	case App:
		h = fnv1a.AddString64(h, "@")
		h = addTerm(h, v.Fun)
		return addTerm(h, v.Arg)
	default:
		return h
	}
}

// seenTerms remembers terms by fingerprint and resolves collisions with Equal.
type seenTerms map[uint64][]Term

// add records t and reports whether an Equal term was already present.
func (s seenTerms) add(t Term) bool {
	fp := Fingerprint(t)
	for _, prev := range s[fp] {
		if Equal(prev, t) {
			return true
		}
	}
	s[fp] = append(s[fp], t)
	return false
}
