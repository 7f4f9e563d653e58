package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/Siecje/coral/ast"
	"github.com/Siecje/coral/token"
)

// ExtractComments returns the comments of a source file in source order.
// It only scans the source, so it accepts input the parser would reject
// as long as every token is well formed.
func ExtractComments(r io.Reader) ([]*ast.Comment, error) {
	var comments []*ast.Comment
	s := token.NewScanner(r)
	for tok := s.Next(); tok.Type != token.EOF; tok = s.Next() {
		if tok.Type == token.Comment {
			comments = append(comments, newComment(tok))
		}
	}
	if err := s.Err(); err != nil {
		var se *token.ScanError
		if errors.As(err, &se) {
			return nil, &SyntaxError{Line: se.Pos.Line, Column: se.Pos.Column, Err: se.Err}
		}
		return nil, err
	}
	return comments, nil
}

// AttachmentError is returned by AddComments when comments cannot be
// placed unambiguously among the statements of a module.
type AttachmentError struct {
	Pos token.Pos
	Err error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("line:%v: %v", e.Pos, e.Err)
}

func (e *AttachmentError) Unwrap() error { return e.Err }

type placement int

const (
	before   placement = iota // standalone comment before the statement
	trailing                  // comment on the last line of the statement
	atEnd                     // standalone comment after the last statement
)

// attachment places one comment relative to a statement index.
type attachment struct {
	comment *ast.Comment
	stmt    int
	where   placement
}

// AddComments returns a copy of mod with comments attached to its body.
//
// A comment on a line of its own becomes a standalone *ast.Comment
// statement. A comment on the last line of a statement wraps that
// statement in an *ast.NodeWithComment; when several statements share
// the line, the last one takes it. A comment on an inner line of a
// statement spanning several lines is placed before the statement.
//
// Neither mod nor comments are modified.
func AddComments(mod *ast.Module, comments []*ast.Comment) (*ast.Module, error) {
	if err := checkOrder(mod.Body, comments); err != nil {
		return nil, err
	}
	plan, err := planComments(mod.Body, comments)
	if err != nil {
		return nil, err
	}

	body := make([]ast.Stmt, 0, len(mod.Body)+len(comments))
	k := 0
	for i, stmt := range mod.Body {
		for ; k < len(plan) && plan[k].stmt == i && plan[k].where == before; k++ {
			body = append(body, plan[k].comment)
		}
		if k < len(plan) && plan[k].stmt == i && plan[k].where == trailing {
			stmt = &ast.NodeWithComment{Node: stmt, Comment: plan[k].comment}
			k++
		}
		body = append(body, stmt)
	}
	for ; k < len(plan); k++ {
		body = append(body, plan[k].comment)
	}
	return &ast.Module{Body: body}, nil
}

func checkOrder(stmts []ast.Stmt, comments []*ast.Comment) error {
	prev := 0
	for _, c := range comments {
		switch {
		case c.Line < 1:
			return &AttachmentError{Pos: c.Pos(), Err: fmt.Errorf("invalid comment line %d", c.Line)}
		case c.Line == prev:
			return &AttachmentError{Pos: c.Pos(), Err: errors.New("more than one comment on a line")}
		case c.Line < prev:
			return &AttachmentError{Pos: c.Pos(), Err: errors.New("comments out of order")}
		}
		prev = c.Line
	}
	lastEnd := 0
	for _, s := range stmts {
		start, end := span(s)
		if start < lastEnd {
			return &AttachmentError{Pos: s.Pos(), Err: errors.New("statements out of order")}
		}
		lastEnd = end
	}
	return nil
}

// planComments decides where each comment goes. Both sequences are
// sorted by line, so a single merge pass suffices.
func planComments(stmts []ast.Stmt, comments []*ast.Comment) ([]attachment, error) {
	plan := make([]attachment, 0, len(comments))
	j := 0
	for _, c := range comments {
		for j < len(stmts) && lastLine(stmts[j]) < c.Line {
			j++
		}
		if j == len(stmts) {
			plan = append(plan, attachment{comment: c, stmt: j, where: atEnd})
			continue
		}
		// Statements j..k all end on or after the comment's line;
		// find the last one starting on or before it.
		k := j
		for k+1 < len(stmts) && firstLine(stmts[k+1]) <= c.Line {
			k++
		}
		start, end := span(stmts[k])
		switch {
		case start > c.Line:
			plan = append(plan, attachment{comment: c, stmt: j, where: before})
		case end == c.Line:
			if _, ok := stmts[k].(*ast.ExprStmt); !ok {
				return nil, &AttachmentError{
					Pos: c.Pos(),
					Err: fmt.Errorf("comment %q trails a statement that cannot take one", c.Text),
				}
			}
			plan = append(plan, attachment{comment: c, stmt: k, where: trailing})
		default:
			plan = append(plan, attachment{comment: c, stmt: k, where: before})
		}
	}
	return plan, nil
}

// span returns the first and last lines covered by a statement.
func span(s ast.Stmt) (first, last int) {
	switch s := s.(type) {
	case *ast.ExprStmt:
		first, last = s.Position.Line, s.End.Line
	case *ast.NodeWithComment:
		first, last = firstLine(s.Node), s.Comment.Line
	case *ast.Comment:
		first, last = s.Line, s.Line
	default:
		first = s.Pos().Line
	}
	if last < first {
		last = first
	}
	return first, last
}

func firstLine(s ast.Stmt) int {
	first, _ := span(s)
	return first
}

func lastLine(s ast.Stmt) int {
	_, last := span(s)
	return last
}
