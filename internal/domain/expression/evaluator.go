// Package expression evaluates the restricted arithmetic grammar used by
// stored formulas.
//
// The grammar is closed on purpose: identifiers, numeric literals, + - * /,
// parentheses and the single function ceiling(...). Formula expressions come
// from stored configuration, so they are parsed by this package and nothing
// else; they are never handed to a general-purpose evaluator.
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := ('+' | '-') factor | number | ident | '(' expr ')' | 'ceiling' '(' expr ')'
package expression

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidExpression = errors.New("invalid expression")
	ErrUnknownVariable   = errors.New("unknown variable")
	ErrDivisionByZero    = errors.New("division by zero")
)

// Evaluate parses expr and computes its value with the supplied variables.
//
// Multiplication and division bind tighter than addition and subtraction;
// operators of equal precedence associate left to right. The result is not
// rounded here.
func Evaluate(expr string, values map[string]float64) (float64, error) {
	node, err := parse(expr)
	if err != nil {
		return 0, err
	}
	return node.eval(values)
}

// Variables parses expr and returns the distinct identifiers it references,
// in first-appearance order. It is the static check used when formulas are
// created or updated.
func Variables(expr string) ([]string, error) {
	node, err := parse(expr)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var names []string
	node.collect(seen, &names)
	return names, nil
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokCeiling
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

func tokenize(expr string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '+':
			toks = append(toks, token{kind: tokPlus, pos: i})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokMinus, pos: i})
			i++
		case c == '*':
			toks = append(toks, token{kind: tokStar, pos: i})
			i++
		case c == '/':
			toks = append(toks, token{kind: tokSlash, pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
			i++
		case c >= '0' && c <= '9':
			start := i
			for i < len(expr) && expr[i] >= '0' && expr[i] <= '9' {
				i++
			}
			if i < len(expr) && expr[i] == '.' {
				i++
				if i >= len(expr) || expr[i] < '0' || expr[i] > '9' {
					return nil, fmt.Errorf("%w: malformed number at position %d", ErrInvalidExpression, start)
				}
				for i < len(expr) && expr[i] >= '0' && expr[i] <= '9' {
					i++
				}
			}
			text := expr[start:i]
			num, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed number %q at position %d", ErrInvalidExpression, text, start)
			}
			toks = append(toks, token{kind: tokNumber, text: text, num: num, pos: start})
		case isIdentStart(c):
			start := i
			for i < len(expr) && isIdentPart(expr[i]) {
				i++
			}
			text := expr[start:i]
			if text == "ceiling" {
				toks = append(toks, token{kind: tokCeiling, text: text, pos: start})
			} else {
				toks = append(toks, token{kind: tokIdent, text: text, pos: start})
			}
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrInvalidExpression, string(c), i)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(expr)})
	return toks, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// node is one AST node of a parsed expression.
type node interface {
	eval(values map[string]float64) (float64, error)
	collect(seen map[string]bool, names *[]string)
}

type numberNode struct{ value float64 }

func (n numberNode) eval(map[string]float64) (float64, error) { return n.value, nil }
func (n numberNode) collect(map[string]bool, *[]string)       {}

type variableNode struct{ name string }

func (n variableNode) eval(values map[string]float64) (float64, error) {
	v, ok := values[n.name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownVariable, n.name)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s is not a finite number", ErrUnknownVariable, n.name)
	}
	return v, nil
}

func (n variableNode) collect(seen map[string]bool, names *[]string) {
	if !seen[n.name] {
		seen[n.name] = true
		*names = append(*names, n.name)
	}
}

type unaryNode struct {
	negate bool
	child  node
}

func (n unaryNode) eval(values map[string]float64) (float64, error) {
	v, err := n.child.eval(values)
	if err != nil {
		return 0, err
	}
	if n.negate {
		return -v, nil
	}
	return v, nil
}

func (n unaryNode) collect(seen map[string]bool, names *[]string) {
	n.child.collect(seen, names)
}

type binaryNode struct {
	op          byte
	left, right node
}

func (n binaryNode) eval(values map[string]float64) (float64, error) {
	l, err := n.left.eval(values)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(values)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	default:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return l / r, nil
	}
}

func (n binaryNode) collect(seen map[string]bool, names *[]string) {
	n.left.collect(seen, names)
	n.right.collect(seen, names)
}

type ceilingNode struct{ child node }

func (n ceilingNode) eval(values map[string]float64) (float64, error) {
	v, err := n.child.eval(values)
	if err != nil {
		return 0, err
	}
	return math.Ceil(v), nil
}

func (n ceilingNode) collect(seen map[string]bool, names *[]string) {
	n.child.collect(seen, names)
}

type parser struct {
	toks []token
	pos  int
}

func parse(expr string) (node, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}
	toks, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		t := p.peek()
		return nil, fmt.Errorf("%w: unexpected token %q at position %d", ErrInvalidExpression, tokenText(t), t.pos)
	}
	return n, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = binaryNode{op: '+', left: left, right: right}
		case tokMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = binaryNode{op: '-', left: left, right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = binaryNode{op: '*', left: left, right: right}
		case tokSlash:
			p.next()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = binaryNode{op: '/', left: left, right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseFactor() (node, error) {
	t := p.next()
	switch t.kind {
	case tokPlus:
		child, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return unaryNode{child: child}, nil
	case tokMinus:
		child, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return unaryNode{negate: true, child: child}, nil
	case tokNumber:
		return numberNode{value: t.num}, nil
	case tokIdent:
		return variableNode{name: t.text}, nil
	case tokCeiling:
		if p.peek().kind != tokLParen {
			return nil, fmt.Errorf("%w: ceiling must be followed by '(' at position %d", ErrInvalidExpression, t.pos)
		}
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, fmt.Errorf("%w: unclosed ceiling call at position %d", ErrInvalidExpression, t.pos)
		}
		p.next()
		return ceilingNode{child: inner}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, fmt.Errorf("%w: unclosed parenthesis at position %d", ErrInvalidExpression, t.pos)
		}
		p.next()
		return unaryNode{child: inner}, nil
	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrInvalidExpression)
	default:
		return nil, fmt.Errorf("%w: unexpected token %q at position %d", ErrInvalidExpression, tokenText(t), t.pos)
	}
}

func tokenText(t token) string {
	switch t.kind {
	case tokPlus:
		return "+"
	case tokMinus:
		return "-"
	case tokStar:
		return "*"
	case tokSlash:
		return "/"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	case tokEOF:
		return "end of expression"
	default:
		return t.text
	}
}
