package fbx

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type tokenType int

const (
	tokIdent tokenType = iota
	tokNumber
	tokString
	tokOperator
	tokBlockStart
	tokBlockEnd
	tokEOL
	tokEOF
)

// textParser reads ascii FBX.
type textParser struct {
	r    io.Reader
	br   *bufio.Reader
	line int
	err  error
}

func (p *textParser) errorf(f string, a ...interface{}) {
	if p.err == nil || p.err == io.EOF {
		p.err = errors.Wrapf(errors.Errorf(f, a...), "line %d", p.line+1)
	}
}

func (p *textParser) next() (byte, bool) {
	if p.err != nil {
		return 0, false
	}
	c, err := p.br.ReadByte()
	if err != nil {
		p.err = err
		return 0, false
	}
	return c, true
}

func (p *textParser) unread() {
	p.br.UnreadByte()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdent(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '_' || c == '|'
}

// scan reads bytes while accept holds. The first rejected byte is pushed back.
func (p *textParser) scan(first byte, accept func(byte) bool) string {
	buf := []byte{first}
	for {
		c, ok := p.next()
		if !ok {
			break
		}
		if !accept(c) {
			p.unread()
			break
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func (p *textParser) token() (tokenType, string) {
	for {
		c, ok := p.next()
		if !ok {
			return tokEOF, ""
		}
		switch {
		case c == ';':
			for ok && c != '\n' {
				c, ok = p.next()
			}
			p.line++
		case c == '\n':
			p.line++
			return tokEOL, ""
		case c == '{':
			return tokBlockStart, "{"
		case c == '}':
			return tokBlockEnd, "}"
		case c == '*' || c == ':' || c == ',':
			return tokOperator, string(c)
		case c == '"':
			var buf []byte
			for c, ok = p.next(); ok && c != '"'; c, ok = p.next() {
				buf = append(buf, c)
			}
			if !ok {
				p.errorf("unterminated string")
			}
			return tokString, strings.ReplaceAll(string(buf), "&quot;", "\"")
		case isDigit(c) || c == '.' || c == '-':
			return tokNumber, p.scan(c, func(c byte) bool {
				return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '-' || c == '+'
			})
		case isIdent(c):
			return tokIdent, p.scan(c, func(c byte) bool {
				return isIdent(c) || isDigit(c) || c == '-'
			})
		}
	}
}

func (p *textParser) expect(t tokenType) {
	if typ, s := p.token(); typ != t {
		p.errorf("unexpected token %q", s)
	}
}

func parseNumber(s string) (interface{}, error) {
	if strings.ContainsAny(s, ".eE") {
		return strconv.ParseFloat(s, 64)
	}
	return strconv.ParseInt(s, 10, 64)
}

// parseArray reads `*N { a: v,v,... }`. Integer arrays become []int32 unless a value overflows.
func (p *textParser) parseArray() *Attribute {
	_, s := p.token()
	size, err := strconv.Atoi(s)
	if err != nil {
		p.errorf("array size %q", s)
		return nil
	}
	p.expect(tokBlockStart)
	for p.err == nil {
		if _, s := p.token(); s == ":" {
			break
		}
	}

	values := make([]float64, 0, size)
	float := false
	wide := false
loop:
	for p.err == nil {
		typ, s := p.token()
		switch typ {
		case tokEOL, tokOperator:
		case tokBlockEnd:
			break loop
		case tokNumber:
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				p.errorf("number %q", s)
			}
			values = append(values, v)
			float = float || strings.ContainsAny(s, ".eE")
			wide = wide || v > math.MaxInt32 || v < math.MinInt32
		default:
			p.errorf("unexpected token %q in array", s)
		}
	}
	if len(values) != size {
		p.errorf("array size %d != %d", len(values), size)
	}

	switch {
	case float:
		return &Attribute{Value: values, ArraySize: uint(size)}
	case wide:
		a := make([]int64, len(values))
		for i, v := range values {
			a[i] = int64(v)
		}
		return &Attribute{Value: a, ArraySize: uint(size)}
	}
	a := make([]int32, len(values))
	for i, v := range values {
		a[i] = int32(v)
	}
	return &Attribute{Value: a, ArraySize: uint(size)}
}

func (p *textParser) parseNode(name string) *Node {
	node := &Node{Name: name}
	p.expect(tokOperator)
	for p.err == nil {
		typ, s := p.token()
		switch typ {
		case tokEOL, tokEOF:
			return node
		case tokBlockStart:
			node.Children = p.parseNodes()
			return node
		case tokNumber:
			v, err := parseNumber(s)
			if err != nil {
				p.errorf("number %q", s)
			}
			node.Attributes = append(node.Attributes, &Attribute{Value: v})
		case tokString, tokIdent:
			node.Attributes = append(node.Attributes, &Attribute{Value: s})
		case tokOperator:
			if s == "*" {
				node.Attributes = append(node.Attributes, p.parseArray())
			}
		}
	}
	return node
}

func (p *textParser) parseNodes() []*Node {
	var nodes []*Node
	for p.err == nil {
		typ, s := p.token()
		switch typ {
		case tokEOL:
		case tokIdent:
			nodes = append(nodes, p.parseNode(s))
		case tokEOF, tokBlockEnd:
			return nodes
		default:
			p.errorf("unexpected token %q", s)
		}
	}
	return nodes
}

func (p *textParser) Parse() (*Node, error) {
	p.br = bufio.NewReader(p.r)
	root := &Node{Name: "_FBX_ROOT"}
	root.Children = p.parseNodes()
	if p.err != nil && p.err != io.EOF {
		return nil, p.err
	}
	return root, nil
}
