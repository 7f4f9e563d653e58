package parser_test

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/Siecje/coral/ast"
	"github.com/Siecje/coral/parser"
	"github.com/Siecje/coral/token"
)

func name(id string) *ast.Name { return &ast.Name{Id: id} }
func str(s string) *ast.Str { return &ast.Str{Value: s} }
func num(i int64) *ast.Num { return &ast.Num{Int: big.NewInt(i)} }
func float(f float64) *ast.Num { return &ast.Num{Float: f} }
func arg(id string) *ast.Arg { return &ast.Arg{Name: id} }
func tuple(x ...ast.Expr) ast.Expr { return &ast.Tuple{Elts: x} }

func bin(x ast.Expr, op ast.Op, y ast.Expr) ast.Expr {
	return &ast.BinOp{Left: x, Op: op, Right: y}
}

func at(line, col int) token.Pos { return token.Pos{Line: line, Column: col} }

func module(stmts ...ast.Stmt) *ast.Module { return &ast.Module{Body: stmts} }

func stmt(x ast.Expr) ast.Stmt { return &ast.ExprStmt{Value: x} }

func TestParse(t *testing.T) {
	tests := []struct {
		src  string
		want ast.Expr
	}{
		{"1 + 2 * 3", bin(num(1), ast.Add, bin(num(2), ast.Mult, num(3)))},
		{"a - b - c", bin(bin(name("a"), ast.Sub, name("b")), ast.Sub, name("c"))},
		{"-2 ** 2", &ast.UnaryOp{Op: ast.USub, Operand: bin(num(2), ast.Pow, num(2))}},
		{"2 ** -1", bin(num(2), ast.Pow, &ast.UnaryOp{Op: ast.USub, Operand: num(1)})},
		{"a | b ^ c & d << e", bin(name("a"), ast.BitOr, bin(name("b"), ast.BitXor,
			bin(name("c"), ast.BitAnd, bin(name("d"), ast.LShift, name("e")))))},
		{"a @ b // c % d", bin(bin(bin(name("a"), ast.MatMult, name("b")), ast.FloorDiv, name("c")), ast.Mod, name("d"))},
		{"a < b <= c", &ast.Compare{Left: name("a"), Ops: []ast.Op{ast.Lt, ast.LtE}, Comparators: []ast.Expr{name("b"), name("c")}}},
		{"a is not b", &ast.Compare{Left: name("a"), Ops: []ast.Op{ast.IsNot}, Comparators: []ast.Expr{name("b")}}},
		{"not a not in b", &ast.UnaryOp{Op: ast.Not, Operand: &ast.Compare{
			Left: name("a"), Ops: []ast.Op{ast.NotIn}, Comparators: []ast.Expr{name("b")}}}},
		{"a or b and c", &ast.BoolOp{Op: ast.Or, Values: []ast.Expr{
			name("a"), &ast.BoolOp{Op: ast.And, Values: []ast.Expr{name("b"), name("c")}}}}},
		{"x if y else z", &ast.IfExp{Test: name("y"), Body: name("x"), Orelse: name("z")}},
		{"lambda: 0", &ast.Lambda{Args: &ast.Arguments{}, Body: num(0)}},
		{"lambda a, b=1, *c, d, e=2, **f: 0", &ast.Lambda{
			Args: &ast.Arguments{
				Args:       []*ast.Arg{arg("a"), arg("b")},
				Defaults:   []ast.Expr{num(1)},
				Vararg:     arg("c"),
				KwOnlyArgs: []*ast.Arg{arg("d"), arg("e")},
				KwDefaults: []ast.Expr{nil, num(2)},
				Kwarg:      arg("f"),
			},
			Body: num(0),
		}},
		{"lambda *, k: k", &ast.Lambda{
			Args: &ast.Arguments{KwOnlyArgs: []*ast.Arg{arg("k")}, KwDefaults: []ast.Expr{nil}},
			Body: name("k"),
		}},
		{"f(a, *b, k=1, **d)", &ast.Call{
			Func: name("f"),
			Args: []ast.Expr{name("a"), &ast.Starred{Value: name("b")}},
			Keywords: []*ast.Keyword{
				{Name: "k", Value: num(1)},
				{Value: name("d")},
			},
		}},
		{"f(x for x in y)", &ast.Call{
			Func: name("f"),
			Args: []ast.Expr{&ast.GeneratorExp{Elt: name("x"), Generators: []*ast.Comprehension{
				{Target: name("x"), Iter: name("y")},
			}}},
		}},
		{"a.b.c", &ast.Attribute{Value: &ast.Attribute{Value: name("a"), Attr: "b"}, Attr: "c"}},
		{"a[1]", &ast.Subscript{Value: name("a"), Slice: num(1)}},
		{"a[1:2, ::3]", &ast.Subscript{Value: name("a"), Slice: tuple(
			&ast.Slice{Lower: num(1), Upper: num(2)},
			&ast.Slice{Step: num(3)},
		)}},
		{"a[:]", &ast.Subscript{Value: name("a"), Slice: &ast.Slice{}}},
		{"()", tuple()},
		{"(1,)", tuple(num(1))},
		{"(1)", num(1)},
		{"1, 2", tuple(num(1), num(2))},
		{"[]", &ast.List{}},
		{"[*a, b]", &ast.List{Elts: []ast.Expr{&ast.Starred{Value: name("a")}, name("b")}}},
		{"{}", &ast.Dict{}},
		{"{1, 2,}", &ast.Set{Elts: []ast.Expr{num(1), num(2)}}},
		{"{**a, 'b': 1}", &ast.Dict{Keys: []ast.Expr{nil, str("b")}, Values: []ast.Expr{name("a"), num(1)}}},
		{"[x for x, y in z if x if y]", &ast.ListComp{Elt: name("x"), Generators: []*ast.Comprehension{{
			Target: tuple(name("x"), name("y")),
			Iter:   name("z"),
			Ifs:    []ast.Expr{name("x"), name("y")},
		}}}},
		{"{k: v for k in a for v in b}", &ast.DictComp{Key: name("k"), Value: name("v"), Generators: []*ast.Comprehension{
			{Target: name("k"), Iter: name("a")},
			{Target: name("v"), Iter: name("b")},
		}}},
		{"{x for x in y}", &ast.SetComp{Elt: name("x"), Generators: []*ast.Comprehension{
			{Target: name("x"), Iter: name("y")},
		}}},
		{"$HOME", &ast.EnvName{Id: "HOME"}},
		{"True", &ast.NameConstant{Value: token.True}},
		{"None", &ast.NameConstant{Value: token.None}},
		{"0x_ff", num(255)},
		{"0o17", num(15)},
		{"1_000", num(1000)},
		{"42E+84", float(42e84)},
		{"1e400", float(math.Inf(1))},
		{".5", float(0.5)},
		{"1.5j", &ast.Num{Float: 1.5, Imag: true}},
		{"'a' 'b'", str("ab")},
		{`"\x41\u00e9\n"`, str("A\u00e9\n")},
		{`'\101\z'`, str(`A\z`)},
		{`r"\d"`, str(`\d`)},
		{`'\N{BULLET} \N{em dash}'`, str("\u2022 \u2014")},
		{`'\N{CJK UNIFIED IDEOGRAPH-4E00}'`, str("\u4e00")},
		{`b'\N{BULLET}'`, &ast.Bytes{Value: `\N{BULLET}`}},
		{"'''a\nb'''", str("a\nb")},
		{`b"\xff" b'a'`, &ast.Bytes{Value: "\xffa"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, _, err := parser.Parse(strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			want := module(stmt(tt.want))
			if !ast.Equal(got, want) {
				t.Errorf("Parse(%q) mismatch (-got +want):\n%s", tt.src, ast.Diff(got, want))
			}
		})
	}
}

func TestParseStatements(t *testing.T) {
	src := "a; b;\n\n(c,\n d)\n"
	got, _, err := parser.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := module(stmt(name("a")), stmt(name("b")), stmt(tuple(name("c"), name("d"))))
	if !ast.Equal(got, want) {
		t.Fatalf("mismatch (-got +want):\n%s", ast.Diff(got, want))
	}
	last := got.Body[2].(*ast.ExprStmt)
	if want := (token.Pos{Line: 3, Column: 1}); last.Position != want {
		t.Errorf("got start %v, want %v", last.Position, want)
	}
	if want := (token.Pos{Line: 4, Column: 4}); last.End != want {
		t.Errorf("got end %v, want %v", last.End, want)
	}
}

func TestParseExpr(t *testing.T) {
	got, err := parser.ParseExpr(strings.NewReader("a + b\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := &ast.Expression{Body: bin(name("a"), ast.Add, name("b"))}
	if !ast.Equal(got, want) {
		t.Errorf("mismatch (-got +want):\n%s", ast.Diff(got, want))
	}

	_, err = parser.ParseExpr(strings.NewReader("a\nb\n"))
	if want := `line:2:1: unexpected Ident("b")`; err == nil || err.Error() != want {
		t.Errorf("got err %v, want %s", err, want)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		src string
		err string
	}{
		{"if x:\n", "line:1:1: unsupported statement: if"},
		{"x = 1\n", "line:1:3: assignment is not supported"},
		{"  x\n", "line:1:3: unexpected indent"},
		{"a b\n", `line:1:3: unexpected Ident("b")`},
		{"*a\n", "line:1:1: cannot use starred expression here"},
		{"f'x'\n", "line:1:3: f-strings are not supported"},
		{"lambda a=1, b: a\n", "line:1:13: non-default argument follows default argument"},
		{"lambda a, a: 0\n", `line:1:11: duplicate argument "a" in function definition`},
		{"lambda *: 0\n", "line:1:8: named arguments must follow bare *"},
		{"lambda a, /: 0\n", "line:1:11: positional-only parameters are not supported"},
		{"f(a=1, b)\n", "line:1:8: positional argument follows keyword argument"},
		{"f(x for x in y, z)\n", "line:1:3: generator expression must be parenthesized"},
		{"[x for 1 in y]\n", "line:1:8: cannot assign to literal"},
		{"b'a' 'b'\n", "line:1:6: cannot mix bytes and nonbytes literals"},
		{`'\N{NO SUCH CHARACTER}'` + "\n", `line:1:1: unknown Unicode character name "NO SUCH CHARACTER"`},
		{`'\N{BULLET'` + "\n", `line:1:1: malformed \N character escape`},
		{`'\N'` + "\n", `line:1:1: malformed \N character escape`},
		{"b'\u00e9'\n", "line:1:1: bytes can only contain ASCII literal characters"},
	}
	for _, tt := range tests {
		_, _, err := parser.Parse(strings.NewReader(tt.src))
		if err == nil {
			t.Errorf("Parse(%q): no error, want %s", tt.src, tt.err)
			continue
		}
		var se *parser.SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("Parse(%q): got %T, want *parser.SyntaxError", tt.src, err)
		}
		if err.Error() != tt.err {
			t.Errorf("Parse(%q):\n got %s\nwant %s", tt.src, err, tt.err)
		}
	}
}

type badReader struct{}

func (badReader) Read([]byte) (int, error) { return 0, errors.New("bad read") }

func TestBadReader(t *testing.T) {
	_, _, err := parser.Parse(badReader{})
	if err == nil || !strings.Contains(err.Error(), "bad read") {
		t.Errorf("got err %v, want a read error", err)
	}
}
