package dictionary

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseList decodes a list-of-strings literal as written by the dataset's
// exporter, e.g. `['chat', "l'animal"]`. Only string elements are accepted;
// anything else is ErrMalformedDefinitions.
func ParseList(s string) ([]string, error) {
	p := listParser{src: s}
	out, err := p.parse()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDefinitions, err)
	}
	return out, nil
}

type listParser struct {
	src string
	pos int
}

func (p *listParser) parse() ([]string, error) {
	p.skipSpace()
	if !p.consume('[') {
		return nil, p.errorf("expected '['")
	}
	out := []string{}
	for {
		p.skipSpace()
		if p.consume(']') {
			break
		}
		str, err := p.str()
		if err != nil {
			return nil, err
		}
		out = append(out, str)

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
		return nil, p.errorf("trailing data")
	}
	return out, nil
}

func (p *listParser) str() (string, error) {
	if p.pos >= len(p.src) {
		return "", p.errorf("unexpected end of input")
	}
	quote := p.src[p.pos]
	if quote != '\'' && quote != '"' {
		return "", p.errorf("expected string")
	}
	p.pos++

	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\\':
			if err := p.escape(&b); err != nil {
				return "", err
			}
		case c == '\n':
			return "", p.errorf("newline in string")
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
	return "", p.errorf("unterminated string")
}

func (p *listParser) escape(b *strings.Builder) error {
	p.pos++ // backslash
	if p.pos >= len(p.src) {
		return p.errorf("dangling escape")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '\\', '\'', '"':
		b.WriteByte(c)
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'x':
		return p.hex(b, 2)
	case 'u':
		return p.hex(b, 4)
	case 'U':
		return p.hex(b, 8)
	default:
		// Unknown escapes keep the backslash.
		b.WriteByte('\\')
		b.WriteByte(c)
	}
	return nil
}

func (p *listParser) hex(b *strings.Builder, n int) error {
	if p.pos+n > len(p.src) {
		return p.errorf("short hex escape")
	}
	v, err := strconv.ParseUint(p.src[p.pos:p.pos+n], 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return p.errorf("bad hex escape %q", p.src[p.pos:p.pos+n])
	}
	b.WriteRune(rune(v))
	p.pos += n
	return nil
}

func (p *listParser) skipSpace() {
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *listParser) consume(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *listParser) errorf(format string, args ...any) error {
	return fmt.Errorf("offset %d: %s", p.pos, fmt.Sprintf(format, args...))
}
