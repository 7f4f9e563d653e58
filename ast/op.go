package ast

//go:generate go tool stringer -type Op

// Op is an operator tag.
type Op uint8

const (
	Invalid Op = iota

	// Binary.
	Add
	Sub
	Mult
	MatMult
	Div
	Mod
	Pow
	LShift
	RShift
	BitOr
	BitXor
	BitAnd
	FloorDiv

	// Boolean.
	And
	Or

	// Unary.
	Invert
	Not
	UAdd
	USub

	// Comparison.
	Eq
	NotEq
	Lt
	LtE
	Gt
	GtE
	Is
	IsNot
	In
	NotIn
)

func (op Op) IsBinary() bool  { return Add <= op && op <= FloorDiv }
func (op Op) IsBool() bool    { return op == And || op == Or }
func (op Op) IsUnary() bool   { return Invert <= op && op <= USub }
func (op Op) IsCompare() bool { return Eq <= op && op <= NotIn }
