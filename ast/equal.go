package ast

import (
	"math/big"

	"github.com/Siecje/coral/token"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	ignorePositions = cmp.Options{
		cmpopts.IgnoreTypes(token.Pos{}),
		cmpopts.IgnoreFields(Comment{}, "Line", "Column"),
	}
	compareValues = cmp.Options{
		cmp.Comparer(func(x, y *big.Int) bool {
			if x == nil || y == nil {
				return x == y
			}
			return x.Cmp(y) == 0
		}),
		cmpopts.EquateEmpty(),
	}
)

// Equal reports whether x and y are structurally equal trees,
// ignoring positions. Nil and empty slices are equal.
func Equal(x, y Node) bool {
	return cmp.Equal(x, y, ignorePositions, compareValues)
}

// EqualPos is like Equal but also compares positions.
func EqualPos(x, y Node) bool {
	return cmp.Equal(x, y, compareValues)
}

// Diff returns a human-readable report of the differences between x and y,
// ignoring positions. It returns "" for equal trees.
func Diff(x, y Node) string {
	return cmp.Diff(x, y, ignorePositions, compareValues)
}
