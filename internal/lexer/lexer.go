// Package lexer implements the pushdown-automaton lexer for TSX source
// text. The lexer decides, per token, which of four sublanguages it is in
// (TypeScript, JSX element, JSX children, JSX closing) without ever
// backtracking over characters it has already consumed.
//
// The scanning strategy is a rune buffer with a single read position and a
// pos2() helper for token start locations, narrowed here to the
// ASCII-only lexeme alphabet this front-end recognises.
package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/voliva/go-tsxfront/internal/token"
)

// LocatedToken bundles a lexical result with its 1-based source position.
// Exactly one of Token or Err is meaningful: a non-empty Err marks a lex
// error at this position; otherwise Token holds the scanned token.
type LocatedToken struct {
	Line  int
	Col   int
	Token token.Token
	Err   string
}

// IsError reports whether this result is a lex error rather than a token.
func (lt LocatedToken) IsError() bool { return lt.Err != "" }

// Lexer is a lazy, single-pass scanner over a TSX source string. Next
// advances one token (or error) at a time; the lexer never looks back at
// characters it has already consumed.
type Lexer struct {
	input         []rune
	pos           int
	line          int
	col           int
	stack         []State
	tracer        io.Writer
	maxStackDepth int // 0 = unbounded
	overflowed    bool
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithTracing makes the lexer write one line per emitted token/error to w.
func WithTracing(w io.Writer) Option {
	return func(l *Lexer) { l.tracer = w }
}

// WithMaxStackDepth bounds how deeply the sublanguage stack may nest before
// the lexer reports a lex error instead of pushing another frame. 0 (the
// default) leaves the stack unbounded; internal/config exposes this as
// MaxNestingDepth.
func WithMaxStackDepth(n int) Option {
	return func(l *Lexer) { l.maxStackDepth = n }
}

// New creates a Lexer over input. The stack is seeded with the invariant
// bottom frame: a Typescript frame with bracket depth 1 and no pending
// JSX transition.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{
		input: []rune(input),
		line:  1,
		col:   1,
		stack: []State{Typescript(1, TransitionNone)},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Lexer) eof() bool { return l.pos >= len(l.input) }

func (l *Lexer) current() rune {
	if l.eof() {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekAt(n int) rune {
	idx := l.pos + n
	if idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

// advance consumes the current character and updates line/col.
func (l *Lexer) advance() rune {
	r := l.current()
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) pos2() (int, int) { return l.line, l.col }

func (l *Lexer) top() *State { return &l.stack[len(l.stack)-1] }

// push adds a sublanguage frame. When a depth guard is configured and
// already saturated, the push is refused and overflowed is latched instead;
// Next reports this as a lex error on the token currently being produced,
// since by the time a push is attempted the token text has already been
// decided.
func (l *Lexer) push(s State) {
	if l.maxStackDepth > 0 && len(l.stack) >= l.maxStackDepth {
		l.overflowed = true
		return
	}
	l.stack = append(l.stack, s)
}

func (l *Lexer) pop() {
	if len(l.stack) > 1 {
		l.stack = l.stack[:len(l.stack)-1]
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
}

func isIdentPart(r rune) bool { return isIdentStart(r) || isDigit(r) }

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// Next advances to the next token or lex error. The second return value is
// false once the input is exhausted with no further token to report.
func (l *Lexer) Next() (LocatedToken, bool) {
	for {
		var lt LocatedToken
		var ok bool
		switch l.top().Kind {
		case StateTypescript:
			var skip bool
			lt, skip, ok = l.nextTypescript()
			if ok && skip {
				continue
			}
		case StateJSXElement:
			lt, ok = l.nextJSXElement()
		case StateJSXChildren:
			lt, ok = l.nextJSXChildren()
		case StateJSXClosing:
			lt, ok = l.nextJSXClosing()
		}
		if !ok {
			return LocatedToken{}, false
		}
		if l.overflowed {
			l.overflowed = false
			lt = LocatedToken{Line: lt.Line, Col: lt.Col, Err: "sublanguage nesting exceeds configured maximum depth"}
		}
		l.trace(lt)
		return lt, true
	}
}

func (l *Lexer) trace(lt LocatedToken) {
	if l.tracer == nil {
		return
	}
	if lt.IsError() {
		fmt.Fprintf(l.tracer, "%d:%d error: %s\n", lt.Line, lt.Col, lt.Err)
		return
	}
	fmt.Fprintf(l.tracer, "%d:%d %s\n", lt.Line, lt.Col, lt.Token.String())
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for !l.eof() && isSpace(l.current()) {
			l.advance()
		}
		if !l.eof() && l.current() == '/' && l.peekAt(1) == '/' {
			l.advance()
			l.advance()
			for !l.eof() && l.current() != '\n' {
				l.advance()
			}
			continue
		}
		if !l.eof() && l.current() == '/' && l.peekAt(1) == '*' {
			l.advance()
			l.advance()
			for !l.eof() {
				if l.current() == '*' && l.peekAt(1) == '/' {
					l.advance()
					l.advance()
					break
				}
				l.advance()
			}
			continue
		}
		return
	}
}

// nextTypescript scans one lexeme in the Typescript sublanguage. The bool
// skip return asks the caller to loop again without producing output; it is
// always false here, since comments are consumed by
// skipWhitespaceAndComments before a lexeme is scanned. The bool ok return
// is false at true EOF.
func (l *Lexer) nextTypescript() (LocatedToken, bool, bool) {
	l.skipWhitespaceAndComments()
	if l.eof() {
		return LocatedToken{}, false, false
	}

	line, col := l.pos2()
	c := l.current()

	switch {
	case isDigit(c):
		var sb strings.Builder
		for !l.eof() && isDigit(l.current()) {
			sb.WriteRune(l.advance())
		}
		text := sb.String()
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return LocatedToken{Line: line, Col: col, Err: fmt.Sprintf("invalid integer literal %q", text)}, false, true
		}
		tok := token.Lit(token.Int(int32(n)))
		l.applyTypescriptTransition(tok)
		return LocatedToken{Line: line, Col: col, Token: tok}, false, true

	case isIdentStart(c):
		text := l.scanIdentifier()
		var tok token.Token
		if token.IsKeyword(text) {
			tok = token.Keyword(text)
		} else {
			tok = token.Identifier(text)
		}
		l.applyTypescriptTransitionIdentifier(text)
		return LocatedToken{Line: line, Col: col, Token: tok}, false, true

	case c == '"' || c == '\'':
		body := l.scanString(c)
		tok := token.Lit(token.Str(body))
		l.applyTypescriptTransition(tok)
		return LocatedToken{Line: line, Col: col, Token: tok}, false, true

	default:
		sym, ok := l.scanSymbol()
		if !ok {
			bad := l.advance()
			return LocatedToken{Line: line, Col: col, Err: fmt.Sprintf("unrecognised character %q", bad)}, false, true
		}
		tok := token.Symbol(sym)
		l.applyTypescriptSymbol(sym)
		return LocatedToken{Line: line, Col: col, Token: tok}, false, true
	}
}

func (l *Lexer) scanIdentifier() string {
	var sb strings.Builder
	for !l.eof() && isIdentPart(l.current()) {
		sb.WriteRune(l.advance())
	}
	return sb.String()
}

// scanString consumes a quoted literal body with no escape processing. An
// EOF before the closing quote leaves the body as read so far.
func (l *Lexer) scanString(quote rune) string {
	l.advance() // opening quote
	var sb strings.Builder
	for !l.eof() && l.current() != quote {
		sb.WriteRune(l.advance())
	}
	if !l.eof() {
		l.advance() // closing quote
	}
	return sb.String()
}

// scanSymbol performs maximal-munch symbol matching: it greedily extends
// the candidate while doing so keeps it a prefix of some valid symbol, then
// backs off one character at a time until the candidate is itself a valid
// symbol (or gives up).
func (l *Lexer) scanSymbol() (string, bool) {
	start, startCol := l.pos, l.col
	cur := string(l.advance())
	for !l.eof() {
		candidate := cur + string(l.current())
		if !token.HasSymbolPrefix(candidate) {
			break
		}
		cur += string(l.advance())
	}
	for len(cur) > 0 {
		if token.IsValidSymbol(cur) {
			return cur, true
		}
		cur = cur[:len(cur)-1]
		l.pos-- // ungetting is safe for every rune after the first: only ASCII symbol runes extend cur
		if l.col > 1 {
			l.col--
		}
	}
	l.pos, l.col = start, startCol // the first rune may be non-ASCII, so restore both exactly
	return "", false
}

// applyTypescriptTransition updates jsx_transition for a non-identifier,
// non-symbol token (literals): any such token resets the pending JSX
// transition to None. bracket_depth is left unchanged.
func (l *Lexer) applyTypescriptTransition(token.Token) {
	l.top().Transition = TransitionNone
}

func (l *Lexer) applyTypescriptTransitionIdentifier(text string) {
	st := l.top()
	switch st.Transition {
	case TransitionSeenLt:
		st.Transition = TransitionSeenLtIdent
	case TransitionSeenLtIdent:
		if text == "extends" {
			st.Transition = TransitionNone
		} else {
			st.Transition = TransitionNone
			l.push(JSXElement(1))
		}
	default:
		st.Transition = TransitionNone
	}
}

func (l *Lexer) applyTypescriptSymbol(sym string) {
	st := l.top()
	switch sym {
	case "{":
		st.BracketDepth++
		return
	case "}":
		if st.BracketDepth == 1 {
			l.pop()
		} else {
			st.BracketDepth--
		}
		return
	case ".":
		// neutral: does not affect jsx_transition
		return
	}

	switch st.Transition {
	case TransitionNone:
		if sym == "<" {
			st.Transition = TransitionSeenLt
		} else if sym == "<>" {
			st.Transition = TransitionNone
			l.push(JSXChildren())
		} else {
			st.Transition = TransitionNone
		}
	case TransitionSeenLtIdent:
		switch sym {
		case ">":
			st.Transition = TransitionNone
			l.push(JSXChildren())
		case "<":
			st.Transition = TransitionNone
			l.push(JSXElement(2))
		case "/>":
			st.Transition = TransitionNone
		default:
			st.Transition = TransitionNone
		}
	default: // TransitionSeenLt with anything but handled above
		st.Transition = TransitionNone
	}
}

func (l *Lexer) nextJSXElement() (LocatedToken, bool) {
	for !l.eof() && isSpace(l.current()) {
		l.advance()
	}
	if l.eof() {
		return LocatedToken{}, false
	}
	line, col := l.pos2()
	c := l.current()

	switch {
	case isIdentStart(c):
		text := l.scanIdentifier()
		return LocatedToken{Line: line, Col: col, Token: token.Identifier(text)}, true
	case c == '"' || c == '\'':
		body := l.scanString(c)
		return LocatedToken{Line: line, Col: col, Token: token.Lit(token.Str(body))}, true
	default:
		sym, ok := l.scanSymbol()
		if !ok {
			bad := l.advance()
			return LocatedToken{Line: line, Col: col, Err: fmt.Sprintf("unexpected character %q in JSX element", bad)}, true
		}
		st := l.top()
		switch sym {
		case "=", "-", ".", ",":
			return LocatedToken{Line: line, Col: col, Token: token.Symbol(sym)}, true
		case "{":
			l.push(Typescript(1, TransitionNone))
			return LocatedToken{Line: line, Col: col, Token: token.Symbol("{")}, true
		case "<":
			st.AngleDepth++
			return LocatedToken{Line: line, Col: col, Token: token.Symbol("<")}, true
		case ">":
			if st.AngleDepth == 1 {
				l.pop()
				l.push(JSXChildren())
			} else {
				st.AngleDepth--
			}
			return LocatedToken{Line: line, Col: col, Token: token.Symbol(">")}, true
		case "/>":
			l.pop()
			return LocatedToken{Line: line, Col: col, Token: token.Symbol("/>")}, true
		default:
			return LocatedToken{Line: line, Col: col, Err: fmt.Sprintf("unexpected symbol %q in JSX element", sym)}, true
		}
	}
}

func (l *Lexer) nextJSXChildren() (LocatedToken, bool) {
	if l.eof() {
		return LocatedToken{}, false
	}
	line, col := l.pos2()
	c := l.current()

	switch {
	case c == '{':
		l.advance()
		l.push(Typescript(1, TransitionNone))
		return LocatedToken{Line: line, Col: col, Token: token.Symbol("{")}, true
	case c == '<' && l.peekAt(1) == '/' && l.peekAt(2) == '>':
		l.advance()
		l.advance()
		l.advance()
		l.pop()
		return LocatedToken{Line: line, Col: col, Token: token.Symbol("</>")}, true
	case c == '<' && l.peekAt(1) == '/':
		l.advance()
		l.advance()
		l.top().Kind = StateJSXClosing
		return LocatedToken{Line: line, Col: col, Token: token.Symbol("</")}, true
	case c == '<' && l.peekAt(1) == '>':
		l.advance()
		l.advance()
		l.push(JSXChildren())
		return LocatedToken{Line: line, Col: col, Token: token.Symbol("<>")}, true
	case c == '<':
		l.advance()
		l.push(JSXElement(1))
		return LocatedToken{Line: line, Col: col, Token: token.Symbol("<")}, true
	default:
		var sb strings.Builder
		for !l.eof() && l.current() != '{' && l.current() != '<' {
			sb.WriteRune(l.advance())
		}
		return LocatedToken{Line: line, Col: col, Token: token.Lit(token.Str(sb.String()))}, true
	}
}

func (l *Lexer) nextJSXClosing() (LocatedToken, bool) {
	for !l.eof() && isSpace(l.current()) {
		l.advance()
	}
	if l.eof() {
		return LocatedToken{}, false
	}
	line, col := l.pos2()
	c := l.current()

	switch {
	case isIdentStart(c):
		text := l.scanIdentifier()
		return LocatedToken{Line: line, Col: col, Token: token.Identifier(text)}, true
	case c == '.':
		l.advance()
		return LocatedToken{Line: line, Col: col, Token: token.Symbol(".")}, true
	case c == '>':
		l.advance()
		l.pop()
		return LocatedToken{Line: line, Col: col, Token: token.Symbol(">")}, true
	default:
		bad := l.advance()
		return LocatedToken{Line: line, Col: col, Err: fmt.Sprintf("unexpected character %q in JSX closing tag", bad)}, true
	}
}
