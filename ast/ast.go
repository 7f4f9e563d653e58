// Package ast declares the syntax tree of the formatter's source language:
// a superset of Python restricted to expression statements and comments.
//
// Every node kind is a pointer to a struct implementing [Node]. The set of
// kinds is closed; the marker methods are unexported so that no other
// package can add one.
package ast

import (
	"math/big"
	"strings"

	"github.com/Siecje/coral/token"
)

// Node is implemented by every node of the tree.
//
//sumtype:decl
type Node interface {
	Pos() token.Pos
	node()
}

// Expr is an expression node.
//
//sumtype:decl
type Expr interface {
	Node
	expr()
}

// Stmt is a node that may appear in the body of a Module:
// an *ExprStmt, a standalone *Comment, or a *NodeWithComment.
//
//sumtype:decl
type Stmt interface {
	Node
	stmt()
}

// Module is the root of a parsed file.
type Module struct {
	Body []Stmt
}

// Expression is the root of a single parsed expression.
type Expression struct {
	Body Expr
}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	Position token.Pos
	End      token.Pos // position just past the last token
	Value    Expr
}

// Comment is a comment token. Line starts at 1, Column at 0.
type Comment struct {
	Text   string
	Line   int
	Column int
}

// IsShebang reports whether c is an interpreter line.
func (c *Comment) IsShebang() bool {
	return c.Line == 1 && c.Column == 0 && strings.HasPrefix(c.Text, "#!")
}

// NodeWithComment is a statement followed by a comment on the same line.
type NodeWithComment struct {
	Node    Stmt
	Comment *Comment
}

type (
	Str struct {
		Position token.Pos
		Value    string
	}

	Bytes struct {
		Position token.Pos
		Value    string
	}

	// Num is a numeric literal. Integer literals have Int set;
	// otherwise Float holds the value, which for an imaginary literal
	// is the imaginary part.
	Num struct {
		Position token.Pos
		Int      *big.Int
		Float    float64
		Imag     bool
	}

	// NameConstant is True, False, or None.
	NameConstant struct {
		Position token.Pos
		Value    token.Type
	}

	Name struct {
		Position token.Pos
		Id       string
	}

	// EnvName is an environment variable lookup: $Id.
	EnvName struct {
		Position token.Pos
		Id       string
	}

	List struct {
		Position token.Pos
		Elts     []Expr
	}

	Tuple struct {
		Position token.Pos
		Elts     []Expr
	}

	Set struct {
		Position token.Pos
		Elts     []Expr
	}

	// Dict is a dict display. A nil key marks a **mapping unpacking
	// of the corresponding value.
	Dict struct {
		Position token.Pos
		Keys     []Expr
		Values   []Expr
	}

	Starred struct {
		Position token.Pos
		Value    Expr
	}

	ListComp struct {
		Position   token.Pos
		Elt        Expr
		Generators []*Comprehension
	}

	SetComp struct {
		Position   token.Pos
		Elt        Expr
		Generators []*Comprehension
	}

	GeneratorExp struct {
		Position   token.Pos
		Elt        Expr
		Generators []*Comprehension
	}

	DictComp struct {
		Position   token.Pos
		Key, Value Expr
		Generators []*Comprehension
	}

	BinOp struct {
		Position token.Pos
		Left     Expr
		Op       Op
		Right    Expr
	}

	BoolOp struct {
		Position token.Pos
		Op       Op
		Values   []Expr
	}

	UnaryOp struct {
		Position token.Pos
		Op       Op
		Operand  Expr
	}

	Compare struct {
		Position    token.Pos
		Left        Expr
		Ops         []Op
		Comparators []Expr
	}

	IfExp struct {
		Position token.Pos
		Test     Expr
		Body     Expr
		Orelse   Expr
	}

	Lambda struct {
		Position token.Pos
		Args     *Arguments
		Body     Expr
	}

	Attribute struct {
		Position token.Pos
		Value    Expr
		Attr     string
	}

	Call struct {
		Position token.Pos
		Func     Expr
		Args     []Expr
		Keywords []*Keyword
	}

	Subscript struct {
		Position token.Pos
		Value    Expr
		Slice    Expr
	}

	// Slice is lower:upper:step inside a subscript. Any part may be nil.
	Slice struct {
		Position           token.Pos
		Lower, Upper, Step Expr
	}
)

// Comprehension is one "for target in iter if cond..." clause.
type Comprehension struct {
	Position token.Pos
	Target   Expr
	Iter     Expr
	Ifs      []Expr
}

// Arguments is a parameter list. Defaults belong to the last len(Defaults)
// entries of Args. KwDefaults parallels KwOnlyArgs; a nil entry marks
// a required keyword-only parameter.
type Arguments struct {
	Args       []*Arg
	Defaults   []Expr
	Vararg     *Arg
	KwOnlyArgs []*Arg
	KwDefaults []Expr
	Kwarg      *Arg
}

type Arg struct {
	Position token.Pos
	Name     string
}

// Keyword is a keyword argument of a call. An empty Name marks
// a **mapping unpacking.
type Keyword struct {
	Position token.Pos
	Name     string
	Value    Expr
}

func (*Module) Pos() token.Pos       { return token.Pos{Line: 1, Column: 1} }
func (e *Expression) Pos() token.Pos { return e.Body.Pos() }
func (s *ExprStmt) Pos() token.Pos   { return s.Position }
func (c *Comment) Pos() token.Pos    { return token.Pos{Line: c.Line, Column: c.Column + 1} }
func (n *NodeWithComment) Pos() token.Pos {
	return n.Node.Pos()
}
func (x *Str) Pos() token.Pos           { return x.Position }
func (x *Bytes) Pos() token.Pos         { return x.Position }
func (x *Num) Pos() token.Pos           { return x.Position }
func (x *NameConstant) Pos() token.Pos  { return x.Position }
func (x *Name) Pos() token.Pos          { return x.Position }
func (x *EnvName) Pos() token.Pos       { return x.Position }
func (x *List) Pos() token.Pos          { return x.Position }
func (x *Tuple) Pos() token.Pos         { return x.Position }
func (x *Set) Pos() token.Pos           { return x.Position }
func (x *Dict) Pos() token.Pos          { return x.Position }
func (x *Starred) Pos() token.Pos       { return x.Position }
func (x *ListComp) Pos() token.Pos      { return x.Position }
func (x *SetComp) Pos() token.Pos       { return x.Position }
func (x *GeneratorExp) Pos() token.Pos  { return x.Position }
func (x *DictComp) Pos() token.Pos      { return x.Position }
func (x *BinOp) Pos() token.Pos         { return x.Position }
func (x *BoolOp) Pos() token.Pos        { return x.Position }
func (x *UnaryOp) Pos() token.Pos       { return x.Position }
func (x *Compare) Pos() token.Pos       { return x.Position }
func (x *IfExp) Pos() token.Pos         { return x.Position }
func (x *Lambda) Pos() token.Pos        { return x.Position }
func (x *Attribute) Pos() token.Pos     { return x.Position }
func (x *Call) Pos() token.Pos          { return x.Position }
func (x *Subscript) Pos() token.Pos     { return x.Position }
func (x *Slice) Pos() token.Pos         { return x.Position }
func (x *Comprehension) Pos() token.Pos { return x.Position }
func (x *Arg) Pos() token.Pos           { return x.Position }
func (x *Keyword) Pos() token.Pos       { return x.Position }

func (a *Arguments) Pos() token.Pos {
	switch {
	case len(a.Args) > 0:
		return a.Args[0].Position
	case a.Vararg != nil:
		return a.Vararg.Position
	case len(a.KwOnlyArgs) > 0:
		return a.KwOnlyArgs[0].Position
	case a.Kwarg != nil:
		return a.Kwarg.Position
	}
	return token.Pos{}
}

func (*Module) node()          {}
func (*Expression) node()      {}
func (*ExprStmt) node()        {}
func (*Comment) node()         {}
func (*NodeWithComment) node() {}
func (*Str) node()             {}
func (*Bytes) node()           {}
func (*Num) node()             {}
func (*NameConstant) node()    {}
func (*Name) node()            {}
func (*EnvName) node()         {}
func (*List) node()            {}
func (*Tuple) node()           {}
func (*Set) node()             {}
func (*Dict) node()            {}
func (*Starred) node()         {}
func (*ListComp) node()        {}
func (*SetComp) node()         {}
func (*GeneratorExp) node()    {}
func (*DictComp) node()        {}
func (*BinOp) node()           {}
func (*BoolOp) node()          {}
func (*UnaryOp) node()         {}
func (*Compare) node()         {}
func (*IfExp) node()           {}
func (*Lambda) node()          {}
func (*Attribute) node()       {}
func (*Call) node()            {}
func (*Subscript) node()       {}
func (*Slice) node()           {}
func (*Comprehension) node()   {}
func (*Arguments) node()       {}
func (*Arg) node()             {}
func (*Keyword) node()         {}

func (*ExprStmt) stmt()        {}
func (*Comment) stmt()         {}
func (*NodeWithComment) stmt() {}

func (*Str) expr()          {}
func (*Bytes) expr()        {}
func (*Num) expr()          {}
func (*NameConstant) expr() {}
func (*Name) expr()         {}
func (*EnvName) expr()      {}
func (*List) expr()         {}
func (*Tuple) expr()        {}
func (*Set) expr()          {}
func (*Dict) expr()         {}
func (*Starred) expr()      {}
func (*ListComp) expr()     {}
func (*SetComp) expr()      {}
func (*GeneratorExp) expr() {}
func (*DictComp) expr()     {}
func (*BinOp) expr()        {}
func (*BoolOp) expr()       {}
func (*UnaryOp) expr()      {}
func (*Compare) expr()      {}
func (*IfExp) expr()        {}
func (*Lambda) expr()       {}
func (*Attribute) expr()    {}
func (*Call) expr()         {}
func (*Subscript) expr()    {}
func (*Slice) expr()        {}
