// Package printer renders syntax trees as canonical source text.
//
// Every node kind has exactly one rendering. Parentheses are emitted only
// where operator precedence requires them, so parsing the output yields
// a tree equal to the printed one.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/Siecje/coral/ast"
	"github.com/Siecje/coral/token"
)

// Config controls the indentation of nested blocks.
// A nil *Config is valid and means the defaults.
type Config struct {
	Indent  int  // spaces per level; 0 means 4
	UseTabs bool // indent with tabs instead of spaces
}

// Indentation returns the indentation prefix of the given block level.
func (c *Config) Indentation(level int) string {
	if level <= 0 {
		return ""
	}
	if c != nil && c.UseTabs {
		return strings.Repeat("\t", level)
	}
	n := 4
	if c != nil && c.Indent > 0 {
		n = c.Indent
	}
	return strings.Repeat(" ", n*level)
}

// UnsupportedNodeError is returned for a node the printer has no
// rendering for, including a nil node.
type UnsupportedNodeError struct {
	Node ast.Node
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported node type %T", e.Node)
}

// ArgumentsError is returned for a parameter list whose defaults do not
// match its parameters.
type ArgumentsError struct {
	Params, Defaults int
	KwOnly           bool
}

func (e *ArgumentsError) Error() string {
	kind := "positional"
	if e.KwOnly {
		kind = "keyword-only"
	}
	return fmt.Sprintf("malformed arguments: %d defaults for %d %s parameters", e.Defaults, e.Params, kind)
}

// Fprint renders node to w. Nothing is written if rendering fails.
// It is safe to call Fprint concurrently with the same cfg.
func Fprint(w io.Writer, node ast.Node, cfg *Config) error {
	p := &printer{cfg: cfg}
	p.node(node, 0)
	if p.err != nil {
		return p.err
	}
	_, err := w.Write(p.buf.Bytes())
	return err
}

// Sprint renders node and returns the result.
func Sprint(node ast.Node, cfg *Config) (string, error) {
	p := &printer{cfg: cfg}
	p.node(node, 0)
	if p.err != nil {
		return "", p.err
	}
	return p.buf.String(), nil
}

type printer struct {
	cfg *Config
	buf bytes.Buffer
	err error // sticky
}

// operand is an expression printed in parentheses
// unless it binds at least as tightly as min.
type operand struct {
	x   ast.Expr
	min int
}

func (p *printer) print(args ...any) {
	for _, arg := range args {
		if p.err != nil {
			return
		}
		switch arg := arg.(type) {
		default:
			p.err = fmt.Errorf("unsupported type %T", arg)
		case nil:
			p.err = &UnsupportedNodeError{}
		case string:
			p.buf.WriteString(arg)
		case operand:
			p.expr(arg.x, arg.min)
		case ast.Expr:
			p.expr(arg, precLowest)
		}
	}
}

// node prints a statement or any other node at the given block level.
func (p *printer) node(n ast.Node, level int) {
	if p.err != nil {
		return
	}
	switch n := n.(type) {
	case *ast.Module:
		for _, stmt := range n.Body {
			p.print(p.cfg.Indentation(level))
			p.node(stmt, level)
			p.print("\n")
		}
		if len(n.Body) == 0 {
			p.print("\n")
		}
	case *ast.Expression:
		p.print(n.Body)
	case *ast.ExprStmt:
		p.print(n.Value)
	case *ast.Comment:
		p.print(comment(n))
	case *ast.NodeWithComment:
		p.node(n.Node, level)
		if n.Comment == nil {
			p.err = &UnsupportedNodeError{Node: n.Comment}
			return
		}
		p.print("  ", comment(n.Comment))
	case *ast.Arguments:
		p.arguments(n)
	case *ast.Arg:
		p.print(n.Name)
	case *ast.Keyword:
		p.keyword(n)
	case *ast.Comprehension:
		p.comprehension(n)
	case ast.Expr:
		p.print(n)
	default:
		p.err = &UnsupportedNodeError{Node: n}
	}
}

// comment returns the canonical form of a comment: a single space
// after the hash. An interpreter line is kept as is.
func comment(c *ast.Comment) string {
	if c.IsShebang() {
		return c.Text
	}
	text := c.Text
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[i+1:]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "#"
	}
	return "# " + text
}

func (p *printer) expr(x ast.Expr, min int) {
	if p.err != nil {
		return
	}
	if precedence(x) < min {
		p.print("(")
		p.expr1(x)
		p.print(")")
		return
	}
	p.expr1(x)
}

func (p *printer) expr1(x ast.Expr) {
	switch x := x.(type) {
	case *ast.Str:
		p.print(quote(x.Value))
	case *ast.Bytes:
		p.print(quoteBytes(x.Value))
	case *ast.Num:
		s, err := formatNum(x)
		if err != nil {
			p.err = err
			return
		}
		p.print(s)
	case *ast.NameConstant:
		switch x.Value {
		case token.True, token.False, token.None:
			p.print(x.Value.String())
		default:
			p.err = fmt.Errorf("invalid constant %v", x.Value)
		}
	case *ast.Name:
		p.print(x.Id)
	case *ast.EnvName:
		p.print("$", x.Id)
	case *ast.List:
		p.print("[")
		p.elts(x.Elts)
		p.print("]")
	case *ast.Tuple:
		p.print("(")
		p.elts(x.Elts)
		if len(x.Elts) == 1 {
			p.print(",")
		}
		p.print(")")
	case *ast.Set:
		p.print("{")
		p.elts(x.Elts)
		p.print("}")
	case *ast.Dict:
		p.dict(x)
	case *ast.Starred:
		p.print("*", operand{x.Value, precBitOr})
	case *ast.ListComp:
		p.print("[", operand{x.Elt, precLambda})
		p.generators(x.Generators)
		p.print("]")
	case *ast.SetComp:
		p.print("{", operand{x.Elt, precLambda})
		p.generators(x.Generators)
		p.print("}")
	case *ast.GeneratorExp:
		p.print("(")
		p.genexp(x)
		p.print(")")
	case *ast.DictComp:
		p.print("{", operand{x.Key, precIfExp}, ": ", operand{x.Value, precLambda})
		p.generators(x.Generators)
		p.print("}")
	case *ast.BinOp:
		p.binary(x)
	case *ast.BoolOp:
		p.boolean(x)
	case *ast.UnaryOp:
		p.unary(x)
	case *ast.Compare:
		p.compare(x)
	case *ast.IfExp:
		p.print(operand{x.Body, precOr}, " if ", operand{x.Test, precOr}, " else ", operand{x.Orelse, precLambda})
	case *ast.Lambda:
		p.print("lambda")
		if x.Args != nil {
			if err := checkArguments(x.Args); err != nil {
				p.err = err
				return
			}
			if !emptyArgs(x.Args) {
				p.print(" ")
				p.arguments(x.Args)
			}
		}
		p.print(": ", operand{x.Body, precLambda})
	case *ast.Attribute:
		if n, ok := x.Value.(*ast.Num); ok && n.Int != nil && !n.Imag {
			// 1.real would scan as a float.
			p.print("(", x.Value, ")")
		} else {
			p.print(operand{x.Value, precPrimary})
		}
		p.print(".", x.Attr)
	case *ast.Call:
		p.call(x)
	case *ast.Subscript:
		p.print(operand{x.Value, precPrimary}, "[")
		p.index(x.Slice)
		p.print("]")
	case *ast.Slice:
		p.slice(x)
	default:
		p.err = &UnsupportedNodeError{Node: x}
	}
}

func (p *printer) elts(elts []ast.Expr) {
	for i, x := range elts {
		if i > 0 {
			p.print(", ")
		}
		p.print(operand{x, precLambda})
	}
}

func (p *printer) dict(d *ast.Dict) {
	if len(d.Keys) != len(d.Values) {
		p.err = fmt.Errorf("malformed dict: %d keys for %d values", len(d.Keys), len(d.Values))
		return
	}
	p.print("{")
	for i, k := range d.Keys {
		if i > 0 {
			p.print(", ")
		}
		if k == nil {
			p.print("**", operand{d.Values[i], precBitOr})
			continue
		}
		p.print(operand{k, precIfExp}, ": ", operand{d.Values[i], precLambda})
	}
	p.print("}")
}

func (p *printer) genexp(g *ast.GeneratorExp) {
	p.print(operand{g.Elt, precLambda})
	p.generators(g.Generators)
}

func (p *printer) generators(gens []*ast.Comprehension) {
	if len(gens) == 0 {
		p.err = fmt.Errorf("comprehension without a for clause")
		return
	}
	for _, c := range gens {
		p.print(" ")
		p.comprehension(c)
	}
}

func (p *printer) comprehension(c *ast.Comprehension) {
	p.print("for ")
	p.target(c.Target)
	p.print(" in ", operand{c.Iter, precOr})
	for _, cond := range c.Ifs {
		p.print(" if ", operand{cond, precOr})
	}
}

// target prints the target of a for clause. A tuple needs no parentheses.
func (p *printer) target(x ast.Expr) {
	t, ok := x.(*ast.Tuple)
	if !ok || len(t.Elts) == 0 {
		p.print(operand{x, precBitOr})
		return
	}
	for i, x := range t.Elts {
		if i > 0 {
			p.print(", ")
		}
		p.print(operand{x, precBitOr})
	}
	if len(t.Elts) == 1 {
		p.print(",")
	}
}

func (p *printer) binary(x *ast.BinOp) {
	sym := p.symbol(x.Op, ast.Op.IsBinary, "binary")
	prec := precedence(x)
	left, right := prec, prec+1
	if x.Op == ast.Pow {
		// Right-associative; the right operand may be unary.
		left, right = precAwait, precUnary
	}
	p.print(operand{x.Left, left}, " ", sym, " ", operand{x.Right, right})
}

func (p *printer) boolean(x *ast.BoolOp) {
	sym := p.symbol(x.Op, ast.Op.IsBool, "boolean")
	prec := precedence(x)
	for i, v := range x.Values {
		if i > 0 {
			p.print(" ", sym, " ")
		}
		p.print(operand{v, prec + 1})
	}
}

func (p *printer) unary(x *ast.UnaryOp) {
	sym := p.symbol(x.Op, ast.Op.IsUnary, "unary")
	if x.Op == ast.Not {
		p.print(sym, " ", operand{x.Operand, precNot})
		return
	}
	if n, ok := x.Operand.(*ast.Num); ok && isNegative(n) {
		// Keep the literal's sign apart from the operator.
		p.print(sym, "(", x.Operand, ")")
		return
	}
	p.print(sym, operand{x.Operand, precUnary})
}

func (p *printer) compare(x *ast.Compare) {
	if len(x.Ops) != len(x.Comparators) || len(x.Ops) == 0 {
		p.err = fmt.Errorf("malformed comparison: %d operators for %d operands", len(x.Ops), len(x.Comparators))
		return
	}
	p.print(operand{x.Left, precBitOr})
	for i, op := range x.Ops {
		sym := p.symbol(op, ast.Op.IsCompare, "comparison")
		p.print(" ", sym, " ", operand{x.Comparators[i], precBitOr})
	}
}

// symbol returns the source form of op, which must belong to the class
// reported by valid.
func (p *printer) symbol(op ast.Op, valid func(ast.Op) bool, class string) string {
	sym, ok := OpSymbols[op]
	if !ok || !valid(op) {
		if p.err == nil {
			p.err = &UnknownOperatorError{Op: op, Class: class}
		}
		return ""
	}
	return sym
}

func emptyArgs(a *ast.Arguments) bool {
	return len(a.Args) == 0 && a.Vararg == nil && len(a.KwOnlyArgs) == 0 && a.Kwarg == nil
}

func checkArguments(a *ast.Arguments) error {
	if len(a.Defaults) > len(a.Args) {
		return &ArgumentsError{Params: len(a.Args), Defaults: len(a.Defaults)}
	}
	if len(a.KwDefaults) != len(a.KwOnlyArgs) {
		return &ArgumentsError{Params: len(a.KwOnlyArgs), Defaults: len(a.KwDefaults), KwOnly: true}
	}
	return nil
}

// arguments prints a parameter list.
func (p *printer) arguments(a *ast.Arguments) {
	if err := checkArguments(a); err != nil {
		p.err = err
		return
	}
	sep := ""
	next := func() {
		p.print(sep)
		sep = ", "
	}
	firstDefault := len(a.Args) - len(a.Defaults)
	for i, arg := range a.Args {
		next()
		p.print(arg.Name)
		if i >= firstDefault {
			p.print("=", operand{a.Defaults[i-firstDefault], precLambda})
		}
	}
	switch {
	case a.Vararg != nil:
		next()
		p.print("*", a.Vararg.Name)
	case len(a.KwOnlyArgs) > 0:
		next()
		p.print("*")
	}
	for i, arg := range a.KwOnlyArgs {
		next()
		p.print(arg.Name)
		if def := a.KwDefaults[i]; def != nil {
			p.print("=", operand{def, precLambda})
		}
	}
	if a.Kwarg != nil {
		next()
		p.print("**", a.Kwarg.Name)
	}
}

func (p *printer) call(c *ast.Call) {
	p.print(operand{c.Func, precPrimary}, "(")
	if len(c.Args) == 1 && len(c.Keywords) == 0 {
		if g, ok := c.Args[0].(*ast.GeneratorExp); ok {
			p.genexp(g)
			p.print(")")
			return
		}
	}
	sep := ""
	for _, x := range c.Args {
		p.print(sep)
		sep = ", "
		if s, ok := x.(*ast.Starred); ok {
			p.print("*", operand{s.Value, precLambda})
			continue
		}
		p.print(operand{x, precLambda})
	}
	for _, kw := range c.Keywords {
		p.print(sep)
		sep = ", "
		p.keyword(kw)
	}
	p.print(")")
}

func (p *printer) keyword(kw *ast.Keyword) {
	if kw.Name == "" {
		p.print("**", operand{kw.Value, precLambda})
		return
	}
	p.print(kw.Name, "=", operand{kw.Value, precLambda})
}

// index prints the contents of a subscript. A tuple of indices
// is printed without parentheses.
func (p *printer) index(x ast.Expr) {
	t, ok := x.(*ast.Tuple)
	if !ok || len(t.Elts) == 0 {
		p.sliceElt(x)
		return
	}
	for i, x := range t.Elts {
		if i > 0 {
			p.print(", ")
		}
		p.sliceElt(x)
	}
	if len(t.Elts) == 1 {
		p.print(",")
	}
}

func (p *printer) sliceElt(x ast.Expr) {
	if s, ok := x.(*ast.Slice); ok {
		p.slice(s)
		return
	}
	p.print(operand{x, precLambda})
}

func (p *printer) slice(s *ast.Slice) {
	if s.Lower != nil {
		p.print(operand{s.Lower, precIfExp})
	}
	p.print(":")
	if s.Upper != nil {
		p.print(operand{s.Upper, precIfExp})
	}
	if s.Step != nil {
		p.print(":", operand{s.Step, precLambda})
	}
}
