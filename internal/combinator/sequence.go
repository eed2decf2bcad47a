package combinator

import (
	"reflect"

	"github.com/voliva/go-tsxfront/internal/token"
)

// Sequence matches an ordered list of child matchers. Because any prefix of
// Optional children may be skipped entirely, more than one position can be
// a "head" — eligible to consume the next token — at once; see the
// optional-propagation rule below.
type Sequence struct {
	children   []Matcher
	isOptional []bool
	heads      []bool
	values     []Value
	valueSet   []bool
	done       bool
}

// NewSequence builds a Sequence over children in order. Optional children
// (built with NewOptional) are detected so the optional-propagation rule
// and the default-to-None completeness rule can apply to them.
func NewSequence(children ...Matcher) *Sequence {
	s := &Sequence{
		children:   children,
		isOptional: make([]bool, len(children)),
		heads:      make([]bool, len(children)),
		values:     make([]Value, len(children)),
		valueSet:   make([]bool, len(children)),
	}
	for i, c := range children {
		if _, ok := c.(*Optional); ok {
			s.isOptional[i] = true
		}
	}
	s.resetSlots()
	return s
}

// resetSlots restores heads/values to the initial state: head 0 only, plus
// whatever the propagation rule adds, and every Optional slot pre-set to
// Option(None) so an Optional that's never activated still yields a
// complete, well-typed result.
func (s *Sequence) resetSlots() {
	n := len(s.children)
	for i := 0; i < n; i++ {
		s.heads[i] = false
		if s.isOptional[i] {
			s.values[i] = NoneValue()
			s.valueSet[i] = true
		} else {
			s.values[i] = Value{}
			s.valueSet[i] = false
		}
	}
	if n > 0 {
		s.heads[0] = true
	}
	s.propagateOptionalHeads()
}

func (s *Sequence) propagateOptionalHeads() {
	n := len(s.children)
	for i := 0; i < n-1; i++ {
		if s.heads[i] && s.isOptional[i] {
			s.heads[i+1] = true
		}
	}
}

func (s *Sequence) resetFrom(i int) {
	n := len(s.children)
	for j := i; j < n; j++ {
		s.children[j].Reset()
		s.heads[j] = false
		if s.isOptional[j] {
			s.values[j] = NoneValue()
			s.valueSet[j] = true
		} else {
			s.values[j] = Value{}
			s.valueSet[j] = false
		}
	}
}

// Feed implements Matcher.
func (s *Sequence) Feed(t token.Token) Result {
	if s.done {
		return rejected()
	}

	n := len(s.children)
	snapshot := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if s.heads[i] {
			snapshot = append(snapshot, i)
		}
	}

	updated := false
	for k := len(snapshot) - 1; k >= 0; k-- {
		i := snapshot[k]
		if !s.heads[i] {
			continue // defensive: a reset at i only touches indices above i, which were already processed
		}
		r := s.children[i].Feed(t)
		if (r.Outcome == Got || r.Outcome == End) && s.valueSet[i] && reflect.DeepEqual(s.values[i], r.Value) {
			// The child re-reported the value it already had (e.g. a OneOf
			// ending once its alternatives stop), so t did not extend it and
			// later positions keep their progress.
			if r.Outcome == End {
				s.heads[i] = false
			}
			continue
		}
		switch r.Outcome {
		case Rejected:
			s.heads[i] = false
		case Accepted:
			// no change
		case Got:
			s.resetFrom(i + 1)
			s.values[i] = r.Value
			s.valueSet[i] = true
			updated = true
			if i+1 < n {
				s.heads[i+1] = true
			}
		case End:
			if r.Value.Kind == ValueOption && r.Value.Option == nil {
				s.heads[i] = false
				continue
			}
			s.resetFrom(i + 1)
			s.values[i] = r.Value
			s.valueSet[i] = true
			s.heads[i] = false
			updated = true
			if i+1 < n {
				s.heads[i+1] = true
			}
		}
	}

	s.propagateOptionalHeads()

	hasHead := false
	for i := 0; i < n; i++ {
		if s.heads[i] {
			hasHead = true
			break
		}
	}
	isComplete := true
	for i := 0; i < n; i++ {
		if !s.valueSet[i] {
			isComplete = false
			break
		}
	}

	switch {
	case isComplete && updated && hasHead:
		return got(VectorValue(append([]Value(nil), s.values...)))
	case isComplete && updated && !hasHead:
		s.done = true
		return end(VectorValue(append([]Value(nil), s.values...)))
	case hasHead:
		return accepted()
	default:
		s.done = true
		return rejected()
	}
}

// Reset implements Matcher.
func (s *Sequence) Reset() {
	for _, c := range s.children {
		c.Reset()
	}
	s.done = false
	s.resetSlots()
}
