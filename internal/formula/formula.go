// Package formula evaluates KPI formulas over a set of named base values.
//
// The grammar is deliberately tiny: numeric literals, named variables and
// + - * / with parentheses. Formulas are parsed with a recursive-descent
// parser rather than handed to a general expression engine, so there is no
// code-execution surface and errors carry an exact position.
package formula

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Resolver resolves variable names to numeric values.
// Names reports every known variable so the lexer can do
// longest-match-first resolution ("Total Revenue" before "Revenue").
type Resolver interface {
	Lookup(name string) (float64, bool)
	Names() []string
}

// Error a formula evaluation failure with the offending position
type Error struct {
	Pos int    // byte offset into the formula
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("formula error at %d: %s", e.Pos, e.Msg)
}

func errAt(pos int, format string, args ...any) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Evaluate parses and evaluates one formula against the resolver.
// Any failure (syntax, unknown variable, non-finite result) returns a
// *Error; the value is then 0.
func Evaluate(input string, vars Resolver) (float64, error) {
	p := &parser{
		input: input,
		names: namesByLength(vars),
		vars:  vars,
	}

	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return 0, errAt(p.pos, "unexpected trailing input %q", p.input[p.pos:])
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errAt(0, "result is not a finite number")
	}
	return v, nil
}

// namesByLength longest first, so overlapping names resolve to the longer one
func namesByLength(vars Resolver) []string {
	names := append([]string(nil), vars.Names()...)
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

type parser struct {
	input string
	pos   int
	names []string
	vars  Resolver
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// parseExpr expr := term (('+'|'-') term)*
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

// parseTerm term := factor (('*'|'/') factor)*
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		opPos := p.pos
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
		} else {
			if right == 0 {
				return 0, errAt(opPos, "division by zero")
			}
			left /= right
		}
	}
}

// parseFactor factor := number | variable | '(' expr ')' | '-' factor
func (p *parser) parseFactor() (float64, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, errAt(p.pos, "unexpected end of formula")
	}

	switch c := p.peek(); {
	case c == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return 0, errAt(p.pos, "missing closing parenthesis")
		}
		p.pos++
		return v, nil

	case c == '-':
		p.pos++
		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -v, nil

	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	}

	return p.parseVariable()
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		p.pos++
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, errAt(start, "invalid number %q", p.input[start:p.pos])
	}
	return v, nil
}

// parseVariable matches a known variable name at the current position.
// Names may contain spaces ("Net Placements"); matching is case-insensitive
// and longest-first.
func (p *parser) parseVariable() (float64, error) {
	rest := p.input[p.pos:]
	for _, name := range p.names {
		if len(rest) < len(name) {
			continue
		}
		if !strings.EqualFold(rest[:len(name)], name) {
			continue
		}
		// A longer identifier must not be cut short ("Revenue" inside "Revenues").
		if tail := rest[len(name):]; tail != "" && isNameChar(tail[0]) {
			continue
		}
		v, ok := p.vars.Lookup(name)
		if !ok {
			continue
		}
		p.pos += len(name)
		return v, nil
	}

	end := p.pos
	for end < len(p.input) && isNameChar(p.input[end]) {
		end++
	}
	return 0, errAt(p.pos, "unknown variable %q", strings.TrimSpace(p.input[p.pos:end]))
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
