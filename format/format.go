// Package format implements canonical formatting of source files:
// parse, attach comments, print.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Siecje/coral/parser"
	"github.com/Siecje/coral/printer"
)

// Source formats src with the default configuration.
// If an error occurs, no partial output is returned.
func Source(src []byte) ([]byte, error) {
	return format(src, nil)
}

// Pipe reads source code from in, formats it, and writes the result to out.
// The indentation can be tweaked using cfg, which may be nil.
// The filename argument is used to set the “filename” in error messages.
func Pipe(filename string, out io.Writer, in io.Reader, cfg *printer.Config) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	code, err := formatCode(filename, src, cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(code)
	return err
}

func formatCode(filename string, src []byte, cfg *printer.Config) ([]byte, error) {
	code, err := format(src, cfg)
	var (
		se *parser.SyntaxError
		ae *parser.AttachmentError
	)
	switch {
	case errors.As(err, &se):
		return nil, fmt.Errorf("%s:%d:%d: %v", filename, se.Line, se.Column, se.Err)
	case errors.As(err, &ae):
		return nil, fmt.Errorf("%s:%v: %v", filename, ae.Pos, ae.Err)
	case err != nil:
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return code, nil
}

func format(src []byte, cfg *printer.Config) ([]byte, error) {
	mod, comments, err := parser.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	mod, err = parser.AddComments(mod, comments)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := printer.Fprint(&b, mod, cfg); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
