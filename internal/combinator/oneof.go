package combinator

import "github.com/voliva/go-tsxfront/internal/token"

type oneOfAlt struct {
	m        Matcher
	terminal bool
	hasValue bool
	value    Value
}

// OneOf matches the first of its alternatives to succeed. Once an
// alternative has produced a result it is "committed": the branch index in
// the returned value never changes again, even if another alternative
// later also succeeds or a fresher alternative rejects.
type OneOf struct {
	alts      []*oneOfAlt
	committed int // -1 until a branch has produced a value
	done      bool
}

// NewOneOf builds a OneOf over the given alternatives, tried in order.
func NewOneOf(alts ...Matcher) *OneOf {
	o := &OneOf{committed: -1}
	for _, a := range alts {
		o.alts = append(o.alts, &oneOfAlt{m: a})
	}
	return o
}

// Feed implements Matcher.
func (o *OneOf) Feed(t token.Token) Result {
	if o.done {
		return rejected()
	}

	anyAccepted := false
	for i, a := range o.alts {
		if a.terminal {
			continue
		}
		r := a.m.Feed(t)
		switch r.Outcome {
		case Rejected:
			a.terminal = true
		case Accepted:
			anyAccepted = true
		case Got:
			a.hasValue = true
			a.value = r.Value
		case End:
			a.terminal = true
			a.hasValue = true
			a.value = r.Value
		}
		if o.committed == -1 && a.hasValue {
			o.committed = i
		}
	}

	if o.committed == -1 {
		if anyAccepted {
			return accepted()
		}
		o.done = true
		return rejected()
	}

	value := BranchValue(o.committed, o.alts[o.committed].value)

	anyActive := false
	for _, a := range o.alts {
		if !a.terminal {
			anyActive = true
			break
		}
	}

	if anyActive {
		return got(value)
	}
	o.done = true
	return end(value)
}

// Reset implements Matcher.
func (o *OneOf) Reset() {
	for _, a := range o.alts {
		a.m.Reset()
		a.terminal = false
		a.hasValue = false
		a.value = Value{}
	}
	o.committed = -1
	o.done = false
}
