package ast_test

import (
	"math/big"
	"testing"

	"github.com/Siecje/coral/ast"
	"github.com/Siecje/coral/token"
)

func at(line, col int) token.Pos { return token.Pos{Line: line, Column: col} }

func TestEqualIgnoresPositions(t *testing.T) {
	x := &ast.Module{Body: []ast.Stmt{
		&ast.NodeWithComment{
			Node: &ast.ExprStmt{Position: at(1, 1), Value: &ast.Num{Position: at(1, 1), Int: big.NewInt(42)}},
			Comment: &ast.Comment{Text: "# answer", Line: 1, Column: 4},
		},
	}}
	y := &ast.Module{Body: []ast.Stmt{
		&ast.NodeWithComment{
			Node: &ast.ExprStmt{Position: at(7, 5), Value: &ast.Num{Position: at(7, 5), Int: big.NewInt(42)}},
			Comment: &ast.Comment{Text: "# answer", Line: 7, Column: 10},
		},
	}}
	if !ast.Equal(x, y) {
		t.Errorf("trees differ:\n%s", ast.Diff(x, y))
	}
	if ast.EqualPos(x, y) {
		t.Error("EqualPos ignored positions")
	}
}

func TestEqualDetectsDifferences(t *testing.T) {
	tests := []struct {
		name string
		x, y ast.Node
	}{{
		"int value",
		&ast.Num{Int: big.NewInt(1)},
		&ast.Num{Int: big.NewInt(2)},
	}, {
		"int and float",
		&ast.Num{Int: big.NewInt(1)},
		&ast.Num{Float: 1},
	}, {
		"comment text",
		&ast.Comment{Text: "# a"},
		&ast.Comment{Text: "# b"},
	}, {
		"node kind",
		&ast.List{},
		&ast.Tuple{},
	}, {
		"operator",
		&ast.BinOp{Left: &ast.Name{Id: "a"}, Op: ast.Add, Right: &ast.Name{Id: "b"}},
		&ast.BinOp{Left: &ast.Name{Id: "a"}, Op: ast.Sub, Right: &ast.Name{Id: "b"}},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ast.Equal(tt.x, tt.y) {
				t.Errorf("Equal(%#v, %#v) = true", tt.x, tt.y)
			}
			if ast.Diff(tt.x, tt.y) == "" {
				t.Error("Diff is empty")
			}
		})
	}
}

func TestOpClasses(t *testing.T) {
	tests := []struct {
		op                            ast.Op
		binary, boolean, unary, compr bool
	}{
		{ast.Pow, true, false, false, false},
		{ast.FloorDiv, true, false, false, false},
		{ast.Or, false, true, false, false},
		{ast.Not, false, false, true, false},
		{ast.USub, false, false, true, false},
		{ast.NotIn, false, false, false, true},
		{ast.Invalid, false, false, false, false},
	}
	for _, tt := range tests {
		got := [4]bool{tt.op.IsBinary(), tt.op.IsBool(), tt.op.IsUnary(), tt.op.IsCompare()}
		want := [4]bool{tt.binary, tt.boolean, tt.unary, tt.compr}
		if got != want {
			t.Errorf("%v: classes = %v, want %v", tt.op, got, want)
		}
	}
}

func TestCommentIsShebang(t *testing.T) {
	tests := []struct {
		c    ast.Comment
		want bool
	}{
		{ast.Comment{Text: "#!/usr/bin/env xonsh", Line: 1}, true},
		{ast.Comment{Text: "#!/usr/bin/env xonsh", Line: 2}, false},
		{ast.Comment{Text: "#!x", Line: 1, Column: 3}, false},
		{ast.Comment{Text: "# !x", Line: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.c.IsShebang(); got != tt.want {
			t.Errorf("%+v.IsShebang() = %v, want %v", tt.c, got, tt.want)
		}
	}
}
