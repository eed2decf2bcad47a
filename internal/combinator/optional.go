package combinator

import "github.com/voliva/go-tsxfront/internal/token"

// Optional wraps an inner matcher that may consume nothing at all. If the
// inner matcher rejects before ever producing a value, Optional treats that
// as a successful empty match; once the inner matcher has produced a
// value, a later rejection is a real rejection (the Optional committed to
// consuming).
type Optional struct {
	inner   Matcher
	emitted bool
	done    bool
}

// NewOptional wraps inner.
func NewOptional(inner Matcher) *Optional {
	return &Optional{inner: inner}
}

// Feed implements Matcher.
func (m *Optional) Feed(t token.Token) Result {
	if m.done {
		return rejected()
	}

	r := m.inner.Feed(t)
	switch r.Outcome {
	case Rejected:
		m.done = true
		if !m.emitted {
			return end(NoneValue())
		}
		return rejected()
	case Accepted:
		return accepted()
	case Got:
		m.emitted = true
		return got(SomeValue(r.Value))
	case End:
		m.done = true
		return end(SomeValue(r.Value))
	}
	return rejected()
}

// Reset implements Matcher.
func (m *Optional) Reset() {
	m.inner.Reset()
	m.emitted = false
	m.done = false
}
