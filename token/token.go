package token

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type ScanError struct {
	Pos Pos
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("line:%v: %v", e.Pos, e.Err)
}

// Pos is a position in the source. Both Line and Column start at 1.
type Pos struct {
	Line, Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position is set.
func (p Pos) IsValid() bool { return p.Line > 0 }

type Token struct {
	Type Type
	Text string
	Pos  Pos
}

func (t Token) String() string {
	switch {
	case t.Type == EOF, t.Type == Newline,
		symbolStart < t.Type && t.Type < symbolEnd,
		keywordStart < t.Type && t.Type < keywordEnd:
		return t.Type.String()
	default:
		return fmt.Sprintf("%v(%q)", t.Type, t.Text)
	}
}

//go:generate go tool stringer -type Type -linecomment

type Type uint

func (t Type) IsKeyword() bool { return keywordStart < t && t < keywordEnd }

const (
	Illegal Type = iota
	EOF
	Newline
	Comment

	Ident
	Int
	Float
	Imag
	String
	Bytes
	EnvVar

	symbolStart
	Lparen    // (
	Rparen    // )
	Lbrack    // [
	Rbrack    // ]
	Lbrace    // {
	Rbrace    // }
	Comma     // ,
	Colon     // :
	Semicolon // ;
	Period    // .
	Assign    // =

	Add      // +
	Sub      // -
	Mul      // *
	Pow      // **
	Quo      // /
	FloorQuo // //
	Rem      // %
	MatMul   // @
	BitAnd   // &
	BitOr    // |
	BitXor   // ^
	BitNot   // ~
	Shl      // <<
	Shr      // >>

	Lt  // <
	Gt  // >
	Leq // <=
	Geq // >=
	Eq  // ==
	Neq // !=
	symbolEnd

	keywordStart
	False    // False
	None     // None
	True     // True
	And      // and
	As       // as
	Assert   // assert
	Async    // async
	Await    // await
	Break    // break
	Class    // class
	Continue // continue
	Def      // def
	Del      // del
	Elif     // elif
	Else     // else
	Except   // except
	Finally  // finally
	For      // for
	From     // from
	Global   // global
	If       // if
	Import   // import
	In       // in
	Is       // is
	Lambda   // lambda
	Nonlocal // nonlocal
	Not      // not
	Or       // or
	Pass     // pass
	Raise    // raise
	Return   // return
	Try      // try
	While    // while
	With     // with
	Yield    // yield
	keywordEnd
)

var keywords map[string]Type

func init() {
	keywords = make(map[string]Type)
	for typ := keywordStart + 1; typ < keywordEnd; typ++ {
		keywords[typ.String()] = typ
	}
}

const eof = -1

// A Scanner splits source text into tokens. Newline tokens mark the end
// of logical lines only: they are not produced for blank lines, for lines
// holding nothing but a comment, or inside brackets.
type Scanner struct {
	r     *bufio.Reader
	queue []Token
	done  bool
	err   error

	line, col   int
	lastLineLen int

	depth   int  // bracket nesting
	pending bool // current logical line has tokens
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		r:    bufio.NewReader(r),
		line: 1,
		col:  1,
	}
}

func (s *Scanner) Next() (tok Token) {
	defer func() {
		switch tok.Type {
		case Lparen, Lbrack, Lbrace:
			s.depth++
		case Rparen, Rbrack, Rbrace:
			if s.depth > 0 {
				s.depth--
			}
		}
		switch tok.Type {
		case Newline, EOF:
			s.pending = false
		case Comment:
		default:
			s.pending = true
		}
	}()

	if len(s.queue) > 0 {
		tok, s.queue = s.queue[0], s.queue[1:]
		return tok
	}

	s.skipBlanks()
	if s.err != nil {
		return Token{Type: EOF, Pos: s.pos()}
	}
	pos := s.pos()
	tok = s.scanAny()
	if tok.Type == EOF && s.pending && s.err == nil {
		// Terminate the last logical line.
		s.queue = append(s.queue, Token{Type: EOF, Pos: pos})
		tok = Token{Type: Newline}
	}
	if typ := tok.Type; tok.Text == "" && symbolStart < typ && typ < symbolEnd {
		tok.Text = typ.String()
	}
	tok.Pos = pos
	return tok
}

func (s *Scanner) Err() error { return s.err }

func (s *Scanner) errorf(format string, args ...interface{}) Token {
	if s.err == nil {
		s.err = &ScanError{s.pos(), fmt.Errorf(format, args...)}
	}
	return Token{Type: EOF}
}

func (s *Scanner) pos() Pos { return Pos{Line: s.line, Column: s.col} }

func (s *Scanner) read() rune {
	if s.done {
		return eof
	}
	r, _, err := s.r.ReadRune()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		s.done = true
		return eof
	}
	if r == '\n' {
		s.line++
		s.lastLineLen, s.col = s.col, 1
	} else {
		s.col++
	}
	return r
}

func (s *Scanner) unread() {
	if s.done {
		return
	}
	if err := s.r.UnreadRune(); err != nil {
		// UnreadRune returns an error only on invalid use.
		panic(err)
	}
	s.col--
	if s.col == 0 {
		s.col = s.lastLineLen
		s.line--
	}
}

func (s *Scanner) peek() rune {
	r := s.read()
	s.unread()
	return r
}

// skipBlanks skips spaces, explicit line joins, and the newlines
// that do not end a logical line.
func (s *Scanner) skipBlanks() {
	for {
		switch r := s.read(); r {
		case ' ', '\t', '\f', '\r':
		case '\\':
			r := s.read()
			if r == '\r' {
				r = s.read()
			}
			if r != '\n' {
				s.errorf("unexpected character after line continuation")
				return
			}
		case '\n':
			if s.pending && s.depth == 0 {
				s.unread()
				return
			}
		default:
			s.unread()
			return
		}
	}
}

func (s *Scanner) scanAny() Token {
	switch r := s.read(); r {
	case eof:
		return Token{Type: EOF}
	case '\n':
		return Token{Type: Newline, Text: "\n"}
	case '#':
		return s.scanComment()
	case '$':
		if id := s.scanIdent(); id != "" {
			return Token{Type: EnvVar, Text: "$" + id}
		}
		return Token{Type: Illegal, Text: "$"}
	case '(':
		return Token{Type: Lparen}
	case ')':
		return Token{Type: Rparen}
	case '[':
		return Token{Type: Lbrack}
	case ']':
		return Token{Type: Rbrack}
	case '{':
		return Token{Type: Lbrace}
	case '}':
		return Token{Type: Rbrace}
	case ',':
		return Token{Type: Comma}
	case ':':
		return Token{Type: Colon}
	case ';':
		return Token{Type: Semicolon}
	case '.':
		if isDigit(s.peek()) {
			b := new(strings.Builder)
			b.WriteRune(r)
			return s.scanFraction(b)
		}
		return Token{Type: Period}
	case '=':
		if s.peek() == '=' {
			s.read()
			return Token{Type: Eq}
		}
		return Token{Type: Assign}
	case '!':
		if s.peek() == '=' {
			s.read()
			return Token{Type: Neq}
		}
		return Token{Type: Illegal, Text: "!"}
	case '+':
		return Token{Type: Add}
	case '-':
		return Token{Type: Sub}
	case '*':
		if s.peek() == '*' {
			s.read()
			return Token{Type: Pow}
		}
		return Token{Type: Mul}
	case '/':
		if s.peek() == '/' {
			s.read()
			return Token{Type: FloorQuo}
		}
		return Token{Type: Quo}
	case '%':
		return Token{Type: Rem}
	case '@':
		return Token{Type: MatMul}
	case '&':
		return Token{Type: BitAnd}
	case '|':
		return Token{Type: BitOr}
	case '^':
		return Token{Type: BitXor}
	case '~':
		return Token{Type: BitNot}
	case '<':
		switch s.peek() {
		case '<':
			s.read()
			return Token{Type: Shl}
		case '=':
			s.read()
			return Token{Type: Leq}
		}
		return Token{Type: Lt}
	case '>':
		switch s.peek() {
		case '>':
			s.read()
			return Token{Type: Shr}
		case '=':
			s.read()
			return Token{Type: Geq}
		}
		return Token{Type: Gt}
	case '\'', '"':
		return s.scanString("", r)
	default:
		if isDigit(r) {
			return s.scanNumber(r)
		}
		s.unread()
		if id := s.scanIdent(); id != "" {
			if q := s.peek(); (q == '\'' || q == '"') && isStringPrefix(id) {
				s.read()
				return s.scanString(id, q)
			}
			if typ, ok := keywords[id]; ok {
				return Token{Type: typ, Text: id}
			}
			return Token{Type: Ident, Text: id}
		}
		s.read()
		return Token{Type: Illegal, Text: string(r)}
	}
}

func (s *Scanner) scanComment() Token {
	var b strings.Builder
	b.WriteByte('#')
	for {
		switch r := s.read(); r {
		case '\n', eof:
			s.unread()
			return Token{Type: Comment, Text: strings.TrimRight(b.String(), "\r")}
		default:
			b.WriteRune(r)
		}
	}
}

func (s *Scanner) scanIdent() string {
	var b strings.Builder
	for {
		switch r := s.read(); {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= utf8.RuneSelf && unicode.IsLetter(r):
			b.WriteRune(r)
		case r >= '0' && r <= '9' || r >= utf8.RuneSelf && unicode.IsDigit(r):
			if b.Len() > 0 {
				b.WriteRune(r)
				continue
			}
			fallthrough
		default:
			s.unread()
			return b.String()
		}
	}
}

func isStringPrefix(id string) bool {
	switch strings.ToLower(id) {
	case "r", "u", "b", "br", "rb", "f", "fr", "rf":
		return true
	default:
		return false
	}
}

// scanString scans a string literal whose opening quote q was just read.
// The token text is the literal exactly as written, prefix included.
func (s *Scanner) scanString(prefix string, q rune) Token {
	lower := strings.ToLower(prefix)
	if strings.Contains(lower, "f") {
		return s.errorf("f-strings are not supported")
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteRune(q)
	triple := false
	if s.peek() == q {
		s.read()
		if s.peek() != q {
			// Empty string.
			b.WriteRune(q)
			return stringToken(lower, b.String())
		}
		s.read()
		b.WriteRune(q)
		b.WriteRune(q)
		triple = true
	}

	closing := 0
	for {
		r := s.read()
		switch r {
		case eof:
			return s.errorf("string not terminated")
		case '\n':
			if !triple {
				return s.errorf("string not terminated")
			}
		case '\\':
			b.WriteRune(r)
			closing = 0
			r = s.read()
			if r == eof {
				return s.errorf("string not terminated")
			}
			b.WriteRune(r)
			continue
		}
		b.WriteRune(r)
		if r != q {
			closing = 0
			continue
		}
		closing++
		if !triple || closing == 3 {
			return stringToken(lower, b.String())
		}
	}
}

func stringToken(prefix, text string) Token {
	if strings.Contains(prefix, "b") {
		return Token{Type: Bytes, Text: text}
	}
	return Token{Type: String, Text: text}
}

func (s *Scanner) scanNumber(r rune) Token {
	b := new(strings.Builder)
	b.WriteRune(r)
	if r == '0' {
		switch p := s.peek(); p {
		case 'x', 'X':
			b.WriteRune(s.read())
			return s.scanBased(b, isHexDigit)
		case 'o', 'O':
			b.WriteRune(s.read())
			return s.scanBased(b, isOctalDigit)
		case 'b', 'B':
			b.WriteRune(s.read())
			return s.scanBased(b, isBinaryDigit)
		}
	}
	if !s.scanDecimal(b) {
		return Token{Type: Illegal, Text: b.String()}
	}
	switch s.peek() {
	case '.':
		b.WriteRune(s.read())
		if !isDigit(s.peek()) {
			return s.scanExponent(b)
		}
		return s.scanFraction(b)
	case 'e', 'E':
		return s.scanExponent(b)
	case 'j', 'J':
		b.WriteRune(s.read())
		return Token{Type: Imag, Text: b.String()}
	}
	text := b.String()
	if strings.Trim(text, "0_") != "" && text[0] == '0' {
		return s.errorf("leading zeros in decimal integer literals are not permitted")
	}
	return Token{Type: Int, Text: text}
}

// scanDecimal scans digits separated by single underscores.
func (s *Scanner) scanDecimal(b *strings.Builder) bool {
	for {
		if b.Len() > 0 && s.peek() == '_' {
			b.WriteRune(s.read())
			if !isDigit(s.peek()) {
				return false
			}
		}
		if !isDigit(s.peek()) {
			break
		}
		b.WriteRune(s.read())
	}
	return b.Len() > 0
}

func (s *Scanner) scanBased(b *strings.Builder, valid func(rune) bool) Token {
	digits := 0
	for {
		switch r := s.peek(); {
		case r == '_':
			b.WriteRune(s.read())
			if !valid(s.peek()) {
				return Token{Type: Illegal, Text: b.String()}
			}
		case valid(r):
			b.WriteRune(s.read())
			digits++
		case isDigit(r) || isLetter(r):
			return s.errorf("invalid digit %q in numeric literal", r)
		default:
			if digits == 0 {
				return Token{Type: Illegal, Text: b.String()}
			}
			return Token{Type: Int, Text: b.String()}
		}
	}
}

// scanFraction scans the digits following a decimal point.
func (s *Scanner) scanFraction(b *strings.Builder) Token {
	digits := new(strings.Builder)
	if !s.scanDecimal(digits) {
		return Token{Type: Illegal, Text: b.String() + digits.String()}
	}
	b.WriteString(digits.String())
	return s.scanExponent(b)
}

func (s *Scanner) scanExponent(b *strings.Builder) Token {
	if r := s.peek(); r == 'e' || r == 'E' {
		b.WriteRune(s.read())
		if r := s.peek(); r == '+' || r == '-' {
			b.WriteRune(s.read())
		}
		exp := new(strings.Builder)
		if !s.scanDecimal(exp) {
			return Token{Type: Illegal, Text: b.String()}
		}
		b.WriteString(exp.String())
	}
	if r := s.peek(); r == 'j' || r == 'J' {
		b.WriteRune(s.read())
		return Token{Type: Imag, Text: b.String()}
	}
	return Token{Type: Float, Text: b.String()}
}

func isDigit(r rune) bool       { return '0' <= r && r <= '9' }
func isOctalDigit(r rune) bool  { return '0' <= r && r <= '7' }
func isBinaryDigit(r rune) bool { return r == '0' || r == '1' }
func isHexDigit(r rune) bool {
	return isDigit(r) || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}
func isLetter(r rune) bool { return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' }
