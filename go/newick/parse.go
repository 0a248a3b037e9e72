package newick

import (
	"fmt"

	"github.com/rcedgar/retree/go/util"
)

// parser consumes the lexer's item stream with one item of lookahead.
type parser struct {
	lex    *lexer
	tok    item
	labels util.StringSet // non-empty labels seen so far, for duplicate detection
}

// Parse converts a Newick string into a Tree. On failure the returned error
// is a *LexError or *ParseError describing the first violation encountered;
// there is no partial-tree recovery.
func Parse(input string) (*Tree, error) {
	p := &parser{
		lex:    newLexer(input),
		labels: util.StringSet{},
	}
	p.next()
	if p.tok.typ == itemError {
		return nil, p.lex.err
	}
	if p.tok.typ == itemEOF {
		return nil, &ParseError{Kind: EmptyInput, Pos: 0, Line: 1}
	}
	root, err := p.parseSubtree()
	if err != nil {
		return nil, err
	}
	switch p.tok.typ {
	case itemSemicolon:
		p.next()
	case itemEOF:
		return nil, p.parseError(MissingSemicolon, "tree is not terminated")
	case itemRParen:
		return nil, p.parseError(UnbalancedParens, "unmatched ')'")
	case itemError:
		return nil, p.lex.err
	default:
		return nil, p.parseError(UnexpectedToken, "got %s before ';'", p.tok.typ)
	}
	if p.tok.typ == itemError {
		return nil, p.lex.err
	}
	if p.tok.typ != itemEOF {
		return nil, p.parseError(UnexpectedToken, "trailing data after ';'")
	}
	return &Tree{Root: root}, nil
}

func (p *parser) next() {
	p.tok = p.lex.nextItem()
}

// parseError builds a ParseError located at the current token.
func (p *parser) parseError(kind ParseErrorKind, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:   kind,
		Pos:    p.tok.pos,
		Line:   p.tok.line,
		Detail: fmt.Sprintf(format, args...),
	}
}

// parseSubtree parses either an internal node, introduced by '(', or a leaf.
// A leaf's label and branch length are both optional, so a bare ',' or ')'
// yields an empty leaf node, which is how forms like "(,);" stay valid.
func (p *parser) parseSubtree() (*Node, error) {
	switch p.tok.typ {
	case itemError:
		return nil, p.lex.err
	case itemLParen:
		return p.parseInternal()
	default:
		return p.parseLeaf()
	}
}

// parseInternal parses '(' subtree (',' subtree)* ')' with an optional label
// and branch length after the closing parenthesis.
func (p *parser) parseInternal() (*Node, error) {
	open := p.tok
	p.next()
	n := &Node{}
	for {
		child, err := p.parseSubtree()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
		switch p.tok.typ {
		case itemComma:
			p.next()
		case itemRParen:
			p.next()
			if err := p.parseLabelAndLength(n); err != nil {
				return nil, err
			}
			return n, nil
		case itemSemicolon, itemEOF:
			return nil, &ParseError{
				Kind:   UnbalancedParens,
				Pos:    open.pos,
				Line:   open.line,
				Detail: "'(' is never closed",
			}
		case itemError:
			return nil, p.lex.err
		default:
			return nil, p.parseError(UnexpectedToken, "expected ',' or ')', got %s", p.tok.typ)
		}
	}
}

func (p *parser) parseLeaf() (*Node, error) {
	n := &Node{}
	if err := p.parseLabelAndLength(n); err != nil {
		return nil, err
	}
	return n, nil
}

// parseLabelAndLength consumes an optional label and an optional ':' Number
// branch length, which may follow a leaf position or a closing ')'.
func (p *parser) parseLabelAndLength(n *Node) error {
	if p.tok.typ == itemLabel {
		if err := p.setLabel(n, p.tok); err != nil {
			return err
		}
		p.next()
	}
	if p.tok.typ == itemColon {
		p.next()
		if p.tok.typ == itemError {
			return p.lex.err
		}
		if p.tok.typ != itemNumber {
			return p.parseError(UnexpectedToken, "expected branch length after ':', got %s", p.tok.typ)
		}
		length := p.tok.num
		n.Length = &length
		p.next()
	}
	return nil
}

// setLabel attaches a label token to a node. Every non-empty label must be
// unique within its tree; a quoted empty string is treated as no label.
func (p *parser) setLabel(n *Node, tok item) error {
	if tok.val == "" {
		return nil
	}
	if p.labels[tok.val] {
		return &ParseError{
			Kind:   DuplicateLabel,
			Pos:    tok.pos,
			Line:   tok.line,
			Detail: fmt.Sprintf("label %q appears more than once", tok.val),
		}
	}
	p.labels[tok.val] = true
	n.Label = tok.val
	return nil
}
