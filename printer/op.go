package printer

import (
	"fmt"

	"github.com/Siecje/coral/ast"
)

// OpSymbols maps operators to their source form. Rendering an operator
// missing from the table fails with an *UnknownOperatorError.
// The table may be extended before formatting starts; it must not be
// modified while Fprint runs.
var OpSymbols = map[ast.Op]string{
	ast.Add:      "+",
	ast.Sub:      "-",
	ast.Mult:     "*",
	ast.MatMult:  "@",
	ast.Div:      "/",
	ast.Mod:      "%",
	ast.Pow:      "**",
	ast.LShift:   "<<",
	ast.RShift:   ">>",
	ast.BitOr:    "|",
	ast.BitXor:   "^",
	ast.BitAnd:   "&",
	ast.FloorDiv: "//",

	ast.And: "and",
	ast.Or:  "or",

	ast.Invert: "~",
	ast.Not:    "not",
	ast.UAdd:   "+",
	ast.USub:   "-",

	ast.Eq:    "==",
	ast.NotEq: "!=",
	ast.Lt:    "<",
	ast.LtE:   "<=",
	ast.Gt:    ">",
	ast.GtE:   ">=",
	ast.Is:    "is",
	ast.IsNot: "is not",
	ast.In:    "in",
	ast.NotIn: "not in",
}

// UnknownOperatorError is returned when an operator has no symbol
// or is used in a node of the wrong class.
type UnknownOperatorError struct {
	Op    ast.Op
	Class string // "binary", "boolean", "unary", or "comparison"
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown %s operator %v", e.Class, e.Op)
}

// Precedence levels, from the loosest binding to the tightest.
const (
	precLowest = iota
	precLambda
	precIfExp
	precOr
	precAnd
	precNot
	precCompare
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precArith
	precTerm
	precUnary
	precPow
	precAwait
	precPrimary
	precAtom
)

var opTable = [...][]ast.Op{
	precBitOr:  {ast.BitOr},
	precBitXor: {ast.BitXor},
	precBitAnd: {ast.BitAnd},
	precShift:  {ast.LShift, ast.RShift},
	precArith:  {ast.Add, ast.Sub},
	precTerm:   {ast.Mult, ast.Div, ast.FloorDiv, ast.Mod, ast.MatMult},
	precPow:    {ast.Pow},
}

var opPrec map[ast.Op]int

func init() {
	opPrec = make(map[ast.Op]int)
	for prec, level := range opTable {
		for _, op := range level {
			opPrec[op] = prec
		}
	}
}

// precedence returns how tightly x binds when printed without parentheses.
func precedence(x ast.Expr) int {
	switch x := x.(type) {
	case *ast.Lambda:
		return precLambda
	case *ast.IfExp:
		return precIfExp
	case *ast.BoolOp:
		if x.Op == ast.And {
			return precAnd
		}
		return precOr
	case *ast.UnaryOp:
		if x.Op == ast.Not {
			return precNot
		}
		return precUnary
	case *ast.Compare:
		return precCompare
	case *ast.BinOp:
		if prec, ok := opPrec[x.Op]; ok {
			return prec
		}
		return precLowest
	case *ast.Num:
		if isNegative(x) {
			return precUnary
		}
	case *ast.Attribute, *ast.Call, *ast.Subscript:
		return precPrimary
	}
	return precAtom
}
