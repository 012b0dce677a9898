package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jacoelho/cssq/internal/css/ast"
	"github.com/jacoelho/cssq/internal/css/properties"
)

// Parse compiles a selector list.
func Parse(text string) (*List, error) {
	p := &parser{src: text}
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf(ErrSyntax, "empty selector")
	}
	list, err := p.parseList(false, false)
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf(ErrSyntax, "unexpected %q", p.peek())
	}
	return list, nil
}

// MustParse is like Parse but panics on error. It is intended for tests
// and fixed queries.
func MustParse(text string) *List {
	l, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return l
}

type parser struct {
	src   string
	pos   int
	inHas bool
}

func (p *parser) errorf(sentinel error, format string, args ...any) *Error {
	return &Error{Pos: p.pos, Msg: fmt.Sprintf(format, args...), Err: sentinel}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() bool {
	start := p.pos
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
	return p.pos > start
}

// parseList reads selectors up to the end of input, or up to the closing
// parenthesis of a functional pseudo-class when nested.
func (p *parser) parseList(nested, relative bool) (*List, error) {
	start := p.pos
	list := &List{}
	for {
		p.skipSpace()
		sel, err := p.parseSelector(relative)
		if err != nil {
			return nil, err
		}
		list.Selectors = append(list.Selectors, sel)

		p.skipSpace()
		if p.eof() {
			if nested {
				return nil, p.errorf(ErrSyntax, "missing )")
			}
			break
		}
		if p.peek() == ',' {
			p.pos++
			continue
		}
		if nested && p.peek() == ')' {
			break
		}
		return nil, p.errorf(ErrSyntax, "unexpected %q", p.peek())
	}
	list.Text = strings.TrimSpace(p.src[start:p.pos])
	return list, nil
}

func (p *parser) parseSelector(relative bool) (*Selector, error) {
	start := p.pos
	sel := &Selector{}

	if c, ok := combinator(p.peek()); ok {
		if !relative {
			return nil, p.errorf(ErrSyntax, "unexpected combinator %q", p.peek())
		}
		sel.Leading = c
		p.pos++
		p.skipSpace()
	}

	split := splitter{sel: sel}
	for {
		if err := p.parseCompound(sel); err != nil {
			return nil, err
		}

		spaced := p.skipSpace()
		if p.eof() || p.peek() == ',' || p.peek() == ')' {
			split.cut(CombinatorNone)
			break
		}

		next := Descendant
		if c, ok := combinator(p.peek()); ok {
			next = c
			p.pos++
			p.skipSpace()
		} else if !spaced {
			return nil, p.errorf(ErrSyntax, "unexpected %q", p.peek())
		}
		split.cut(next)
	}

	sel.Text = strings.TrimSpace(p.src[start:p.pos])
	sel.finish()
	return sel, nil
}

// parseCompound reads one compound selector, which must not be empty.
func (p *parser) parseCompound(sel *Selector) error {
	first := len(sel.Components)
	for !p.eof() {
		c := p.peek()
		pos := p.pos
		switch {
		case c == '*' || isNameStart(c):
			if len(sel.Components) > first {
				return p.errorf(ErrSyntax, "type selector must come first in a compound")
			}
			if c == '*' {
				p.pos++
				sel.Components = append(sel.Components, Component{Kind: KindWildcard, Pos: pos})
				continue
			}
			name := p.name()
			id, ok := ast.Lookup(name)
			if !ok {
				id = ast.NoNode
			}
			sel.Components = append(sel.Components, Component{Kind: KindType, Pos: pos, Type: id, TypeName: name})
		case c == '[':
			comp, err := p.parseAttribute()
			if err != nil {
				return err
			}
			sel.Components = append(sel.Components, comp)
		case c == ':':
			comp, err := p.parsePseudo()
			if err != nil {
				return err
			}
			sel.Components = append(sel.Components, comp)
		default:
			if len(sel.Components) == first {
				return p.errorf(ErrSyntax, "expected selector, found %q", c)
			}
			return nil
		}
	}
	if len(sel.Components) == first {
		return p.errorf(ErrSyntax, "expected selector")
	}
	return nil
}

func (p *parser) name() string {
	start := p.pos
	for !p.eof() && isNameByte(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) parseAttribute() (Component, error) {
	comp := Component{Kind: KindAttribute, Pos: p.pos}
	p.pos++ // [
	p.skipSpace()

	if p.eof() || !isNameStart(p.peek()) {
		return Component{}, p.errorf(ErrSyntax, "expected attribute name")
	}
	comp.Attribute.Name = p.name()
	comp.Attribute.Kind, _ = ast.ParsePropertyKind(comp.Attribute.Name)
	p.skipSpace()

	if p.peek() == ']' {
		p.pos++
		return comp, nil
	}

	op, ok := p.attrOp()
	if !ok {
		return Component{}, p.errorf(ErrSyntax, "expected attribute operator")
	}
	comp.Attribute.Op = op
	p.skipSpace()

	value, err := p.attrValue()
	if err != nil {
		return Component{}, err
	}
	comp.Attribute.Value = value
	p.skipSpace()

	if p.peek() != ']' {
		return Component{}, p.errorf(ErrSyntax, "missing ]")
	}
	p.pos++
	return comp, nil
}

func (p *parser) attrOp() (AttrOp, bool) {
	if p.peek() == '=' {
		p.pos++
		return AttrEquals, true
	}
	if p.pos+1 < len(p.src) {
		if op, ok := attrOps[p.src[p.pos:p.pos+2]]; ok {
			p.pos += 2
			return op, true
		}
	}
	return 0, false
}

func (p *parser) attrValue() (string, error) {
	if p.eof() {
		return "", p.errorf(ErrSyntax, "expected attribute value")
	}
	if q := p.peek(); q == '"' || q == '\'' {
		return p.quoted(q)
	}
	start := p.pos
	for !p.eof() && !isSpace(p.peek()) && p.peek() != ']' {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf(ErrSyntax, "expected attribute value")
	}
	return p.src[start:p.pos], nil
}

func (p *parser) quoted(quote byte) (string, error) {
	start := p.pos
	p.pos++
	var b strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\\' && p.pos+1 < len(p.src):
			b.WriteByte(p.src[p.pos+1])
			p.pos += 2
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	p.pos = start
	return "", p.errorf(ErrSyntax, "unterminated string")
}

func (p *parser) parsePseudo() (Component, error) {
	comp := Component{Kind: KindPseudo, Pos: p.pos}
	p.pos++ // :
	if p.peek() == ':' {
		return Component{}, p.errorf(ErrSyntax, "pseudo-elements are not supported")
	}
	if p.eof() || !isNameStart(p.peek()) {
		return Component{}, p.errorf(ErrSyntax, "expected pseudo-class name")
	}
	namePos := p.pos
	name := strings.ToLower(p.name())

	if p.peek() != '(' {
		pseudo, ok := pseudoNames[name]
		if !ok {
			p.pos = namePos
			return Component{}, p.errorf(ErrUnknownPseudo, ":%s", name)
		}
		comp.Pseudo = pseudo
		return comp, nil
	}

	pseudo, ok := functionalNames[name]
	if !ok {
		p.pos = namePos
		return Component{}, p.errorf(ErrUnknownPseudo, ":%s()", name)
	}
	comp.Pseudo = pseudo
	p.pos++ // (

	switch pseudo {
	case PseudoNot, PseudoHas:
		if pseudo == PseudoHas && p.inHas {
			p.pos = namePos
			return Component{}, p.errorf(ErrNestedHas, ":has() inside :has()")
		}
		outer := p.inHas
		p.inHas = p.inHas || pseudo == PseudoHas
		inner, err := p.parseList(true, pseudo == PseudoHas)
		p.inHas = outer
		if err != nil {
			return Component{}, err
		}
		comp.Inner = inner
	default:
		argPos := p.pos
		arg, err := p.argument()
		if err != nil {
			return Component{}, err
		}
		if err := comp.setArgument(arg); err != nil {
			return Component{}, &Error{Pos: argPos, Msg: fmt.Sprintf("invalid argument %q to :%s()", arg, name), Err: sentinelOf(err)}
		}
	}

	if p.peek() != ')' {
		return Component{}, p.errorf(ErrSyntax, "missing )")
	}
	p.pos++
	return comp, nil
}

// argument reads raw text up to the closing parenthesis, which is left
// unconsumed.
func (p *parser) argument() (string, error) {
	start := p.pos
	for !p.eof() && p.peek() != ')' {
		if p.peek() == '(' {
			return "", p.errorf(ErrSyntax, "unexpected (")
		}
		p.pos++
	}
	if p.eof() {
		return "", p.errorf(ErrSyntax, "missing )")
	}
	return strings.TrimSpace(p.src[start:p.pos]), nil
}

func (c *Component) setArgument(arg string) error {
	var err error
	switch c.Pseudo {
	case PseudoNthChild, PseudoNthLastChild, PseudoNthOfType, PseudoNthLastOfType:
		c.Nth, err = ParseNth(arg)
	case PseudoSize:
		c.Size, err = ParseComparison(arg)
	case PseudoPropertyType:
		group, ok := properties.Group(arg)
		if !ok {
			return fmt.Errorf("%w: unknown property group %q", ErrSyntax, arg)
		}
		c.Group = group
	case PseudoPrefixedVendor:
		vendor, ok := ast.ParseVendor(arg)
		if !ok {
			return fmt.Errorf("%w: unknown vendor %q", ErrSyntax, arg)
		}
		c.Vendor = vendor
	}
	return err
}

func sentinelOf(err error) error {
	for _, sentinel := range []error{ErrNth, ErrSize, ErrSyntax} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return ErrSyntax
}

func combinator(c byte) (Combinator, bool) {
	switch c {
	case '>':
		return Child, true
	case '+':
		return NextSibling, true
	case '~':
		return SubsequentSibling, true
	}
	return CombinatorNone, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isNameStart(c byte) bool {
	return c == '-' || c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isNameStart(c) || ('0' <= c && c <= '9')
}
