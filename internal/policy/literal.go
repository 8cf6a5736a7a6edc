package policy

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLiteral = errors.New("invalid list literal")

// parseLiteralList accepts a bracketed list of quoted strings such as
// ['a', "b",]. Only string literals are allowed; anything else is rejected.
func parseLiteralList(input string) ([]string, error) {
	p := &literalParser{src: input}
	return p.parse()
}

type literalParser struct {
	src string
	pos int
}

func (p *literalParser) parse() ([]string, error) {
	p.skipSpace()
	if !p.consume('[') {
		return nil, p.errorf("expected '['")
	}

	var items []string
	for {
		p.skipSpace()
		if p.consume(']') {
			break
		}

		s, err := p.quoted()
		if err != nil {
			return nil, err
		}
		items = append(items, s)

		p.skipSpace()
		if p.consume(',') {
			continue
		}
		if p.consume(']') {
			break
		}
		return nil, p.errorf("expected ',' or ']'")
	}

	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("trailing input")
	}
	return items, nil
}

func (p *literalParser) quoted() (string, error) {
	if p.pos >= len(p.src) {
		return "", p.errorf("unexpected end of input")
	}
	quote := p.src[p.pos]
	if quote != '\'' && quote != '"' {
		return "", p.errorf("expected quoted string")
	}
	p.pos++

	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		p.pos++
		switch {
		case c == quote:
			return b.String(), nil
		case c == '\\':
			if p.pos >= len(p.src) {
				return "", p.errorf("unterminated escape")
			}
			b.WriteByte(unescape(p.src[p.pos]))
			p.pos++
		case c == '\n':
			return "", p.errorf("newline in string")
		default:
			b.WriteByte(c)
		}
	}
	return "", p.errorf("unterminated string")
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

func (p *literalParser) consume(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *literalParser) errorf(msg string) error {
	return fmt.Errorf("%w: %s at offset %d", ErrInvalidLiteral, msg, p.pos)
}
