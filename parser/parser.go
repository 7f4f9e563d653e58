package parser

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Siecje/coral/ast"
	"github.com/Siecje/coral/token"
)

// SyntaxError records an error and the position it occurred on.
type SyntaxError struct {
	Line, Column int
	Err          error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line:%d:%d: %v", e.Line, e.Column, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

type parser struct {
	scan *token.Scanner

	err  error
	tok  token.Token
	prev token.Token // last consumed token

	comments []*ast.Comment
}

// Parse parses a source file and returns its syntax tree together with
// the comments found in it, in source order. The tree holds no comments;
// see [AddComments]. If an error occurs while parsing (except io errors),
// the returned error will be of type *SyntaxError.
func Parse(r io.Reader) (*ast.Module, []*ast.Comment, error) {
	p := &parser{scan: token.NewScanner(r)}
	p.next() // init
	mod := p.parseModule()
	if p.err != nil {
		return nil, nil, p.err
	}
	return mod, p.comments, nil
}

// ParseExpr parses a single expression, optionally followed by a newline.
func ParseExpr(r io.Reader) (*ast.Expression, error) {
	p := &parser{scan: token.NewScanner(r)}
	p.next()
	x := p.parseExprList()
	p.got(token.Newline)
	if p.tok.Type != token.EOF {
		p.errorf("unexpected %v", p.tok)
	}
	if p.err != nil {
		return nil, p.err
	}
	return &ast.Expression{Body: x}, nil
}

func (p *parser) next() {
	if p.tok.Type == token.EOF {
		return
	}
	p.prev = p.tok
	for {
		p.tok = p.scan.Next()
		if p.tok.Type != token.Comment {
			break
		}
		p.comments = append(p.comments, newComment(p.tok))
	}
	if p.tok.Type == token.EOF && p.err == nil {
		err := p.scan.Err()
		if se, ok := err.(*token.ScanError); ok {
			// Make sure we always return *SyntaxError.
			p.err = &SyntaxError{
				Line:   se.Pos.Line,
				Column: se.Pos.Column,
				Err:    se.Err,
			}
		} else if err != nil {
			p.errorf("scan: %v", err)
		}
	}
}

func newComment(tok token.Token) *ast.Comment {
	return &ast.Comment{Text: tok.Text, Line: tok.Pos.Line, Column: tok.Pos.Column - 1}
}

func (p *parser) got(typ token.Type) bool {
	if p.tok.Type == typ {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(typ token.Type) {
	if !p.got(typ) {
		p.errorf("expecting %v, found %v", typ, p.tok)
	}
}

func (p *parser) errorf(format string, args ...interface{}) {
	p.errorAt(p.tok.Pos, format, args...)
}

func (p *parser) errorAt(pos token.Pos, format string, args ...interface{}) {
	if p.err == nil {
		p.tok.Type = token.EOF
		p.err = &SyntaxError{Line: pos.Line, Column: pos.Column, Err: fmt.Errorf(format, args...)}
	}
}

// end returns the position just past tok.
func end(tok token.Token) token.Pos {
	pos := tok.Pos
	if i := strings.LastIndexByte(tok.Text, '\n'); i >= 0 {
		pos.Line += strings.Count(tok.Text, "\n")
		pos.Column = utf8.RuneCountInString(tok.Text[i+1:]) + 1
		return pos
	}
	pos.Column += utf8.RuneCountInString(tok.Text)
	return pos
}

func (p *parser) parseModule() *ast.Module {
	mod := new(ast.Module)
	for p.tok.Type != token.EOF {
		if p.tok.Pos.Column != 1 {
			p.errorf("unexpected indent")
			break
		}
		for {
			mod.Body = append(mod.Body, p.parseSimpleStmt())
			if !p.got(token.Semicolon) || p.tok.Type == token.Newline {
				break
			}
		}
		p.expect(token.Newline)
	}
	return mod
}

func (p *parser) parseSimpleStmt() ast.Stmt {
	pos := p.tok.Pos
	if typ := p.tok.Type; typ.IsKeyword() && !startsExpr(typ) {
		p.errorf("unsupported statement: %v", p.tok)
		return nil
	}
	x := p.parseExprList()
	switch p.tok.Type {
	case token.Newline, token.Semicolon:
	case token.Assign:
		p.errorf("assignment is not supported")
	default:
		p.errorf("unexpected %v", p.tok)
	}
	return &ast.ExprStmt{Position: pos, End: end(p.prev), Value: x}
}

func startsExpr(typ token.Type) bool {
	switch typ {
	case token.Ident, token.Int, token.Float, token.Imag, token.String, token.Bytes, token.EnvVar,
		token.Lparen, token.Lbrack, token.Lbrace,
		token.Add, token.Sub, token.BitNot, token.Mul,
		token.False, token.None, token.True, token.Lambda, token.Not:
		return true
	default:
		return false
	}
}

// parseExprList parses expressions separated by commas.
// More than one expression, or a trailing comma, makes a tuple.
func (p *parser) parseExprList() ast.Expr {
	pos := p.tok.Pos
	x := p.parseStarExpr()
	if p.tok.Type != token.Comma {
		if _, ok := x.(*ast.Starred); ok {
			p.errorAt(pos, "cannot use starred expression here")
		}
		return x
	}
	elts := []ast.Expr{x}
	for p.got(token.Comma) {
		if !startsExpr(p.tok.Type) {
			break
		}
		elts = append(elts, p.parseStarExpr())
	}
	return &ast.Tuple{Position: pos, Elts: elts}
}

func (p *parser) parseStarExpr() ast.Expr {
	pos := p.tok.Pos
	if p.got(token.Mul) {
		return &ast.Starred{Position: pos, Value: p.parseBinary(0)}
	}
	return p.parseExpr()
}

func (p *parser) parseExpr() ast.Expr {
	if p.tok.Type == token.Lambda {
		return p.parseLambda()
	}
	pos := p.tok.Pos
	x := p.parseOr()
	if !p.got(token.If) {
		return x
	}
	test := p.parseOr()
	p.expect(token.Else)
	return &ast.IfExp{Position: pos, Test: test, Body: x, Orelse: p.parseExpr()}
}

func (p *parser) parseOr() ast.Expr {
	pos := p.tok.Pos
	x := p.parseAnd()
	if p.tok.Type != token.Or {
		return x
	}
	values := []ast.Expr{x}
	for p.got(token.Or) {
		values = append(values, p.parseAnd())
	}
	return &ast.BoolOp{Position: pos, Op: ast.Or, Values: values}
}

func (p *parser) parseAnd() ast.Expr {
	pos := p.tok.Pos
	x := p.parseNot()
	if p.tok.Type != token.And {
		return x
	}
	values := []ast.Expr{x}
	for p.got(token.And) {
		values = append(values, p.parseNot())
	}
	return &ast.BoolOp{Position: pos, Op: ast.And, Values: values}
}

func (p *parser) parseNot() ast.Expr {
	pos := p.tok.Pos
	if p.got(token.Not) {
		return &ast.UnaryOp{Position: pos, Op: ast.Not, Operand: p.parseNot()}
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() ast.Expr {
	pos := p.tok.Pos
	x := p.parseBinary(0)
	var cmp *ast.Compare
	for {
		var op ast.Op
		switch p.tok.Type {
		case token.Lt:
			op = ast.Lt
		case token.Gt:
			op = ast.Gt
		case token.Leq:
			op = ast.LtE
		case token.Geq:
			op = ast.GtE
		case token.Eq:
			op = ast.Eq
		case token.Neq:
			op = ast.NotEq
		case token.In:
			op = ast.In
		case token.Is:
			op = ast.Is
		case token.Not:
			op = ast.NotIn
		default:
			if cmp != nil {
				return cmp
			}
			return x
		}
		p.next()
		switch op {
		case ast.Is:
			if p.got(token.Not) {
				op = ast.IsNot
			}
		case ast.NotIn:
			p.expect(token.In)
		}
		if cmp == nil {
			cmp = &ast.Compare{Position: pos, Left: x}
		}
		cmp.Ops = append(cmp.Ops, op)
		cmp.Comparators = append(cmp.Comparators, p.parseBinary(0))
	}
}

// binaryLevels lists binary operators from the loosest binding to the tightest.
var binaryLevels = [...][]struct {
	tok token.Type
	op  ast.Op
}{
	{{token.BitOr, ast.BitOr}},
	{{token.BitXor, ast.BitXor}},
	{{token.BitAnd, ast.BitAnd}},
	{{token.Shl, ast.LShift}, {token.Shr, ast.RShift}},
	{{token.Add, ast.Add}, {token.Sub, ast.Sub}},
	{
		{token.Mul, ast.Mult},
		{token.Quo, ast.Div},
		{token.FloorQuo, ast.FloorDiv},
		{token.Rem, ast.Mod},
		{token.MatMul, ast.MatMult},
	},
}

func (p *parser) parseBinary(level int) ast.Expr {
	if level == len(binaryLevels) {
		return p.parseFactor()
	}
	pos := p.tok.Pos
	x := p.parseBinary(level + 1)
Loop:
	for {
		for _, bin := range binaryLevels[level] {
			if p.tok.Type == bin.tok {
				p.next()
				x = &ast.BinOp{Position: pos, Left: x, Op: bin.op, Right: p.parseBinary(level + 1)}
				continue Loop
			}
		}
		return x
	}
}

func (p *parser) parseFactor() ast.Expr {
	pos := p.tok.Pos
	var op ast.Op
	switch p.tok.Type {
	case token.Add:
		op = ast.UAdd
	case token.Sub:
		op = ast.USub
	case token.BitNot:
		op = ast.Invert
	default:
		return p.parsePower()
	}
	p.next()
	return &ast.UnaryOp{Position: pos, Op: op, Operand: p.parseFactor()}
}

func (p *parser) parsePower() ast.Expr {
	pos := p.tok.Pos
	x := p.parsePrimary()
	if p.got(token.Pow) {
		return &ast.BinOp{Position: pos, Left: x, Op: ast.Pow, Right: p.parseFactor()}
	}
	return x
}

func (p *parser) parsePrimary() ast.Expr {
	pos := p.tok.Pos
	x := p.parseAtom()
	for {
		switch p.tok.Type {
		case token.Period:
			p.next()
			name := p.tok.Text
			if !p.got(token.Ident) {
				p.errorf("expecting attribute name, found %v", p.tok)
				return x
			}
			x = &ast.Attribute{Position: pos, Value: x, Attr: name}
		case token.Lparen:
			x = p.parseCall(pos, x)
		case token.Lbrack:
			x = p.parseSubscript(pos, x)
		default:
			return x
		}
	}
}

func (p *parser) parseAtom() ast.Expr {
	pos := p.tok.Pos
	switch tok := p.tok; tok.Type {
	case token.Ident:
		p.next()
		return &ast.Name{Position: pos, Id: tok.Text}
	case token.EnvVar:
		p.next()
		return &ast.EnvName{Position: pos, Id: strings.TrimPrefix(tok.Text, "$")}
	case token.True, token.False, token.None:
		p.next()
		return &ast.NameConstant{Position: pos, Value: tok.Type}
	case token.Int, token.Float, token.Imag:
		p.next()
		return p.parseNumber(tok)
	case token.String, token.Bytes:
		return p.parseStrings()
	case token.Lparen:
		return p.parseParen()
	case token.Lbrack:
		return p.parseList()
	case token.Lbrace:
		return p.parseBrace()
	case token.Illegal:
		p.errorf("invalid syntax %q", tok.Text)
	default:
		p.errorf("unexpected %v", tok)
	}
	return nil
}

func (p *parser) parseNumber(tok token.Token) ast.Expr {
	text := strings.ReplaceAll(tok.Text, "_", "")
	num := &ast.Num{Position: tok.Pos}
	switch tok.Type {
	case token.Int:
		n, ok := new(big.Int).SetString(text, 0)
		if !ok {
			p.errorAt(tok.Pos, "invalid integer literal %q", tok.Text)
			return nil
		}
		num.Int = n
		return num
	case token.Imag:
		num.Imag = true
		text = text[:len(text)-1]
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !isRangeErr(err) {
		p.errorAt(tok.Pos, "invalid number literal %q", tok.Text)
		return nil
	}
	num.Float = f
	return num
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// parseStrings parses adjacent string literals, which are concatenated.
func (p *parser) parseStrings() ast.Expr {
	pos := p.tok.Pos
	isBytes := p.tok.Type == token.Bytes
	var b strings.Builder
	for p.tok.Type == token.String || p.tok.Type == token.Bytes {
		if (p.tok.Type == token.Bytes) != isBytes {
			p.errorf("cannot mix bytes and nonbytes literals")
			return nil
		}
		s, err := unquote(p.tok.Text)
		if err != nil {
			p.errorf("%v", err)
			return nil
		}
		b.WriteString(s)
		p.next()
	}
	if isBytes {
		return &ast.Bytes{Position: pos, Value: b.String()}
	}
	return &ast.Str{Position: pos, Value: b.String()}
}

func (p *parser) parseParen() ast.Expr {
	pos := p.tok.Pos
	p.next()
	if p.got(token.Rparen) {
		return &ast.Tuple{Position: pos}
	}
	x := p.parseStarExpr()
	switch p.tok.Type {
	case token.For:
		gen := &ast.GeneratorExp{Position: pos, Elt: p.comprehensionElt(x), Generators: p.parseComprehensions()}
		p.expect(token.Rparen)
		return gen
	case token.Rparen:
		if _, ok := x.(*ast.Starred); ok {
			p.errorf("cannot use starred expression here")
		}
		p.next()
		return x
	}
	elts := p.parseElts(x, token.Rparen)
	p.expect(token.Rparen)
	return &ast.Tuple{Position: pos, Elts: elts}
}

func (p *parser) parseList() ast.Expr {
	pos := p.tok.Pos
	p.next()
	if p.got(token.Rbrack) {
		return &ast.List{Position: pos}
	}
	x := p.parseStarExpr()
	if p.tok.Type == token.For {
		comp := &ast.ListComp{Position: pos, Elt: p.comprehensionElt(x), Generators: p.parseComprehensions()}
		p.expect(token.Rbrack)
		return comp
	}
	elts := p.parseElts(x, token.Rbrack)
	p.expect(token.Rbrack)
	return &ast.List{Position: pos, Elts: elts}
}

func (p *parser) parseBrace() ast.Expr {
	pos := p.tok.Pos
	p.next()
	if p.got(token.Rbrace) {
		return &ast.Dict{Position: pos}
	}
	if p.got(token.Pow) {
		return p.parseDict(pos, nil, p.parseBinary(0))
	}
	x := p.parseStarExpr()
	if p.got(token.Colon) {
		if _, ok := x.(*ast.Starred); ok {
			p.errorf("cannot use a starred expression in a dictionary key")
		}
		v := p.parseExpr()
		if p.tok.Type == token.For {
			comp := &ast.DictComp{Position: pos, Key: x, Value: v, Generators: p.parseComprehensions()}
			p.expect(token.Rbrace)
			return comp
		}
		return p.parseDict(pos, x, v)
	}
	if p.tok.Type == token.For {
		comp := &ast.SetComp{Position: pos, Elt: p.comprehensionElt(x), Generators: p.parseComprehensions()}
		p.expect(token.Rbrace)
		return comp
	}
	elts := p.parseElts(x, token.Rbrace)
	p.expect(token.Rbrace)
	return &ast.Set{Position: pos, Elts: elts}
}

// parseDict parses the rest of a dict display whose first entry is k: v.
func (p *parser) parseDict(pos token.Pos, k, v ast.Expr) ast.Expr {
	d := &ast.Dict{Position: pos, Keys: []ast.Expr{k}, Values: []ast.Expr{v}}
	for p.got(token.Comma) {
		if p.tok.Type == token.Rbrace {
			break
		}
		if p.got(token.Pow) {
			d.Keys = append(d.Keys, nil)
			d.Values = append(d.Values, p.parseBinary(0))
			continue
		}
		k := p.parseExpr()
		p.expect(token.Colon)
		d.Keys = append(d.Keys, k)
		d.Values = append(d.Values, p.parseExpr())
	}
	p.expect(token.Rbrace)
	return d
}

// parseElts parses the rest of a comma-separated list of elements
// following first, up to the closing token.
func (p *parser) parseElts(first ast.Expr, closing token.Type) []ast.Expr {
	elts := []ast.Expr{first}
	for p.got(token.Comma) {
		if p.tok.Type == closing {
			break
		}
		elts = append(elts, p.parseStarExpr())
	}
	return elts
}

func (p *parser) comprehensionElt(x ast.Expr) ast.Expr {
	if _, ok := x.(*ast.Starred); ok {
		p.errorf("iterable unpacking cannot be used in comprehension")
	}
	return x
}

func (p *parser) parseComprehensions() []*ast.Comprehension {
	var gens []*ast.Comprehension
	for p.tok.Type == token.For {
		pos := p.tok.Pos
		p.next()
		target := p.parseTargets()
		p.expect(token.In)
		c := &ast.Comprehension{Position: pos, Target: target, Iter: p.parseOr()}
		for p.got(token.If) {
			c.Ifs = append(c.Ifs, p.parseOr())
		}
		gens = append(gens, c)
	}
	return gens
}

func (p *parser) parseTargets() ast.Expr {
	pos := p.tok.Pos
	x := p.parseTarget()
	if p.tok.Type != token.Comma {
		return x
	}
	elts := []ast.Expr{x}
	for p.got(token.Comma) {
		if p.tok.Type == token.In {
			break
		}
		elts = append(elts, p.parseTarget())
	}
	return &ast.Tuple{Position: pos, Elts: elts}
}

func (p *parser) parseTarget() ast.Expr {
	pos := p.tok.Pos
	var x ast.Expr
	if p.got(token.Mul) {
		x = &ast.Starred{Position: pos, Value: p.parseBinary(0)}
	} else {
		x = p.parseBinary(0)
	}
	if !assignable(x) {
		p.errorAt(pos, "cannot assign to %s", describe(x))
	}
	return x
}

func assignable(x ast.Expr) bool {
	switch x := x.(type) {
	case nil, *ast.Name, *ast.Attribute, *ast.Subscript:
		return true
	case *ast.Starred:
		return assignable(x.Value)
	case *ast.Tuple:
		return allAssignable(x.Elts)
	case *ast.List:
		return allAssignable(x.Elts)
	default:
		return false
	}
}

func allAssignable(elts []ast.Expr) bool {
	for _, x := range elts {
		if !assignable(x) {
			return false
		}
	}
	return true
}

func describe(x ast.Expr) string {
	switch x := x.(type) {
	case *ast.Num, *ast.Str, *ast.Bytes, *ast.NameConstant:
		return "literal"
	case *ast.Call:
		return "function call"
	case *ast.BinOp, *ast.UnaryOp, *ast.BoolOp:
		return "expression"
	case *ast.Compare:
		return "comparison"
	case *ast.Lambda:
		return "lambda"
	default:
		return strings.ToLower(strings.TrimPrefix(fmt.Sprintf("%T", x), "*ast."))
	}
}

func (p *parser) parseLambda() ast.Expr {
	pos := p.tok.Pos
	p.next()
	args := p.parseParams()
	p.expect(token.Colon)
	return &ast.Lambda{Position: pos, Args: args, Body: p.parseExpr()}
}

func (p *parser) parseParams() *ast.Arguments {
	args := new(ast.Arguments)
	seen := make(map[string]bool)
	kwOnly := false
	var starPos token.Pos
	for p.tok.Type != token.Colon && p.tok.Type != token.EOF {
		switch p.tok.Type {
		case token.Pow:
			p.next()
			args.Kwarg = p.parseParam(seen)
			p.got(token.Comma)
			if p.tok.Type != token.Colon {
				p.errorf("arguments cannot follow var-keyword argument")
			}
			return args
		case token.Mul:
			if kwOnly {
				p.errorf("* argument may appear only once")
				return args
			}
			starPos = p.tok.Pos
			kwOnly = true
			p.next()
			if p.tok.Type == token.Ident {
				args.Vararg = p.parseParam(seen)
			}
		case token.Quo:
			p.errorf("positional-only parameters are not supported")
			return args
		default:
			arg := p.parseParam(seen)
			var def ast.Expr
			if p.got(token.Assign) {
				def = p.parseExpr()
			}
			if kwOnly {
				args.KwOnlyArgs = append(args.KwOnlyArgs, arg)
				args.KwDefaults = append(args.KwDefaults, def)
			} else {
				if def == nil && len(args.Defaults) > 0 {
					p.errorAt(arg.Pos(), "non-default argument follows default argument")
				}
				args.Args = append(args.Args, arg)
				if def != nil {
					args.Defaults = append(args.Defaults, def)
				}
			}
		}
		if !p.got(token.Comma) {
			break
		}
	}
	if kwOnly && args.Vararg == nil && len(args.KwOnlyArgs) == 0 {
		p.errorAt(starPos, "named arguments must follow bare *")
	}
	return args
}

func (p *parser) parseParam(seen map[string]bool) *ast.Arg {
	tok := p.tok
	if !p.got(token.Ident) {
		p.errorf("expecting parameter name, found %v", p.tok)
		return &ast.Arg{Position: tok.Pos}
	}
	if seen[tok.Text] {
		p.errorAt(tok.Pos, "duplicate argument %q in function definition", tok.Text)
	}
	seen[tok.Text] = true
	return &ast.Arg{Position: tok.Pos, Name: tok.Text}
}

func (p *parser) parseCall(pos token.Pos, fn ast.Expr) ast.Expr {
	p.next() // (
	call := &ast.Call{Position: pos, Func: fn}
	kwUnpacked := false
	for p.tok.Type != token.Rparen && p.tok.Type != token.EOF {
		argPos := p.tok.Pos
		switch p.tok.Type {
		case token.Mul:
			p.next()
			if kwUnpacked {
				p.errorAt(argPos, "iterable argument unpacking follows keyword argument unpacking")
			}
			call.Args = append(call.Args, &ast.Starred{Position: argPos, Value: p.parseExpr()})
		case token.Pow:
			p.next()
			kwUnpacked = true
			call.Keywords = append(call.Keywords, &ast.Keyword{Position: argPos, Value: p.parseExpr()})
		default:
			x := p.parseExpr()
			if p.got(token.Assign) {
				name, ok := x.(*ast.Name)
				if !ok {
					p.errorAt(argPos, "expression cannot contain assignment")
					break
				}
				call.Keywords = append(call.Keywords, &ast.Keyword{Position: argPos, Name: name.Id, Value: p.parseExpr()})
				break
			}
			if p.tok.Type == token.For {
				x = &ast.GeneratorExp{Position: argPos, Elt: x, Generators: p.parseComprehensions()}
				if len(call.Args)+len(call.Keywords) > 0 || p.tok.Type != token.Rparen {
					p.errorAt(argPos, "generator expression must be parenthesized")
				}
			}
			switch {
			case kwUnpacked:
				p.errorAt(argPos, "positional argument follows keyword argument unpacking")
			case len(call.Keywords) > 0:
				p.errorAt(argPos, "positional argument follows keyword argument")
			}
			call.Args = append(call.Args, x)
		}
		if !p.got(token.Comma) {
			break
		}
	}
	p.expect(token.Rparen)
	return call
}

func (p *parser) parseSubscript(pos token.Pos, value ast.Expr) ast.Expr {
	p.next() // [
	idxPos := p.tok.Pos
	x := p.parseSlice()
	if p.tok.Type == token.Comma {
		elts := []ast.Expr{x}
		for p.got(token.Comma) {
			if p.tok.Type == token.Rbrack {
				break
			}
			elts = append(elts, p.parseSlice())
		}
		x = &ast.Tuple{Position: idxPos, Elts: elts}
	}
	p.expect(token.Rbrack)
	return &ast.Subscript{Position: pos, Value: value, Slice: x}
}

func (p *parser) parseSlice() ast.Expr {
	pos := p.tok.Pos
	if p.tok.Type == token.Mul {
		return p.parseStarExpr()
	}
	var lower ast.Expr
	if p.tok.Type != token.Colon {
		lower = p.parseExpr()
		if p.tok.Type != token.Colon {
			return lower
		}
	}
	p.next() // :
	s := &ast.Slice{Position: pos, Lower: lower}
	if !p.sliceEnd() {
		s.Upper = p.parseExpr()
	}
	if p.got(token.Colon) && !p.sliceEnd() {
		s.Step = p.parseExpr()
	}
	return s
}

func (p *parser) sliceEnd() bool {
	switch p.tok.Type {
	case token.Colon, token.Comma, token.Rbrack:
		return true
	default:
		return false
	}
}
