package combinator

import "github.com/voliva/go-tsxfront/internal/token"

// Loop repeats an item matcher, spawning a fresh instance for each
// iteration. An iteration that reports Got stays active so later tokens can
// extend it; a token it cannot extend starts the next iteration instead.
// It never returns End: it keeps trying new iterations until an
// iteration rejects before producing any value of its own, at which point
// the Loop itself rejects and the enclosing Sequence keeps whatever Value
// the Loop last reported (the Sequence's Rejected handling never
// overwrites a previously stored value, so this falls out naturally).
//
// Go has no generic "clone a matcher" operation, so instead of cloning a
// template matcher per iteration, this implementation takes a factory
// function that builds a fresh matcher on demand.
type Loop struct {
	newItem   func() Matcher
	active    Matcher
	completed []Value
	activeIdx int  // index in completed of the active iteration's value, -1 if none yet
	restart   bool // the active iteration's last outcome was Got
	done      bool
}

// NewLoop builds a Loop whose iterations are built by newItem.
func NewLoop(newItem func() Matcher) *Loop {
	return &Loop{newItem: newItem, active: newItem(), activeIdx: -1}
}

// Feed implements Matcher.
func (l *Loop) Feed(t token.Token) Result {
	if l.done {
		return rejected()
	}

	r := l.active.Feed(t)
	if r.Outcome == Rejected && l.restart {
		l.active, l.activeIdx = l.newItem(), -1
		r = l.active.Feed(t)
	}
	l.restart = r.Outcome == Got
	switch r.Outcome {
	case Rejected:
		l.done = true
		return rejected()
	case Accepted:
		return accepted()
	case Got, End:
		if l.activeIdx < 0 {
			l.activeIdx = len(l.completed)
			l.completed = append(l.completed, r.Value)
		} else {
			l.completed[l.activeIdx] = r.Value
		}
		if r.Outcome == End {
			l.active, l.activeIdx = l.newItem(), -1
		}
		return got(VectorValue(append([]Value(nil), l.completed...)))
	}
	return rejected()
}

// Reset implements Matcher.
func (l *Loop) Reset() {
	l.completed = nil
	l.active = l.newItem()
	l.activeIdx = -1
	l.restart = false
	l.done = false
}
