package token_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Siecje/coral/token"
	"github.com/google/go-cmp/cmp"
)

func pos(posStr string) token.Pos {
	var pos token.Pos
	fmt.Sscanf(posStr, "%d:%d", &pos.Line, &pos.Column)
	return pos
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{{
		"binary expression",
		"1 + 2\n",
		[]token.Token{
			{token.Int, "1", pos("1:1")},
			{token.Add, "+", pos("1:3")},
			{token.Int, "2", pos("1:5")},
			{token.Newline, "\n", pos("1:6")},
			{token.EOF, "", pos("2:1")},
		},
	}, {
		"comments",
		"# head\n\nx  # trail\n",
		[]token.Token{
			{token.Comment, "# head", pos("1:1")},
			{token.Ident, "x", pos("3:1")},
			{token.Comment, "# trail", pos("3:4")},
			{token.Newline, "\n", pos("3:11")},
			{token.EOF, "", pos("4:1")},
		},
	}, {
		"implicit line join",
		"[1,\n 2]\n",
		[]token.Token{
			{token.Lbrack, "[", pos("1:1")},
			{token.Int, "1", pos("1:2")},
			{token.Comma, ",", pos("1:3")},
			{token.Int, "2", pos("2:2")},
			{token.Rbrack, "]", pos("2:3")},
			{token.Newline, "\n", pos("2:4")},
			{token.EOF, "", pos("3:1")},
		},
	}, {
		"explicit line join",
		"1 + \\\n2\n",
		[]token.Token{
			{token.Int, "1", pos("1:1")},
			{token.Add, "+", pos("1:3")},
			{token.Int, "2", pos("2:1")},
			{token.Newline, "\n", pos("2:2")},
			{token.EOF, "", pos("3:1")},
		},
	}, {
		"missing final newline",
		"None",
		[]token.Token{
			{token.None, "None", pos("1:1")},
			{token.Newline, "", pos("1:5")},
			{token.EOF, "", pos("1:5")},
		},
	}, {
		"strings",
		`'a' "b" r'\d' b"x" '''t'q'''`,
		[]token.Token{
			{token.String, `'a'`, pos("1:1")},
			{token.String, `"b"`, pos("1:5")},
			{token.String, `r'\d'`, pos("1:9")},
			{token.Bytes, `b"x"`, pos("1:15")},
			{token.String, `'''t'q'''`, pos("1:20")},
			{token.Newline, "", pos("1:29")},
			{token.EOF, "", pos("1:29")},
		},
	}, {
		"numbers",
		"42 42.84 42E+84 0x_ff 1_000 .5 3j 1.",
		[]token.Token{
			{token.Int, "42", pos("1:1")},
			{token.Float, "42.84", pos("1:4")},
			{token.Float, "42E+84", pos("1:10")},
			{token.Int, "0x_ff", pos("1:17")},
			{token.Int, "1_000", pos("1:23")},
			{token.Float, ".5", pos("1:29")},
			{token.Imag, "3j", pos("1:32")},
			{token.Float, "1.", pos("1:35")},
			{token.Newline, "", pos("1:37")},
			{token.EOF, "", pos("1:37")},
		},
	}, {
		"operators",
		"a**b//c<=d!=e<<f $HOME",
		[]token.Token{
			{token.Ident, "a", pos("1:1")},
			{token.Pow, "**", pos("1:2")},
			{token.Ident, "b", pos("1:4")},
			{token.FloorQuo, "//", pos("1:5")},
			{token.Ident, "c", pos("1:7")},
			{token.Leq, "<=", pos("1:8")},
			{token.Ident, "d", pos("1:10")},
			{token.Neq, "!=", pos("1:11")},
			{token.Ident, "e", pos("1:13")},
			{token.Shl, "<<", pos("1:14")},
			{token.Ident, "f", pos("1:16")},
			{token.EnvVar, "$HOME", pos("1:18")},
			{token.Newline, "", pos("1:23")},
			{token.EOF, "", pos("1:23")},
		},
	}, {
		"keywords",
		"lambda x: not x",
		[]token.Token{
			{token.Lambda, "lambda", pos("1:1")},
			{token.Ident, "x", pos("1:8")},
			{token.Colon, ":", pos("1:9")},
			{token.Not, "not", pos("1:11")},
			{token.Ident, "x", pos("1:15")},
			{token.Newline, "", pos("1:16")},
			{token.EOF, "", pos("1:16")},
		},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := token.NewScanner(strings.NewReader(tt.input))
			var got []token.Token
			for {
				tok := sc.Next()
				got = append(got, tok)
				if tok.Type == token.EOF {
					break
				}
			}
			if err := sc.Err(); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{{
		"unterminated string",
		`'abc`,
		"line:1:5: string not terminated",
	}, {
		"newline in string",
		"'ab\ncd'",
		"line:2:1: string not terminated",
	}, {
		"f-string",
		`f'x'`,
		"line:1:3: f-strings are not supported",
	}, {
		"leading zeros",
		`012`,
		"line:1:4: leading zeros in decimal integer literals are not permitted",
	}, {
		"bad binary digit",
		`0b12`,
		"line:1:4: invalid digit '2' in numeric literal",
	}, {
		"bad line continuation",
		`1 \ 2`,
		"line:1:5: unexpected character after line continuation",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := token.NewScanner(strings.NewReader(tt.input))

			for sc.Next().Type != token.EOF {
			}
			errStr := "<nil>"
			if err := sc.Err(); err != nil {
				errStr = err.Error()
			}
			if errStr != tt.wantErr {
				t.Errorf("\n got %s\nwant %s", errStr, tt.wantErr)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  token.Type
		want string
	}{
		{token.Pow, "**"},
		{token.FloorQuo, "//"},
		{token.Not, "not"},
		{token.None, "None"},
		{token.EnvVar, "EnvVar"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
	if !token.Lambda.IsKeyword() || token.Ident.IsKeyword() {
		t.Error("IsKeyword misclassifies lambda or identifiers")
	}
}

func TestBadReader(t *testing.T) {
	sc := token.NewScanner(new(badReader))
	for sc.Next().Type != token.EOF {
	}
	errStr := "<nil>"
	if err := sc.Err(); err != nil {
		errStr = err.Error()
	}
	const wantErr = "i'm fine"
	if errStr != wantErr {
		t.Errorf("\n got %s\nwant %s", errStr, wantErr)
	}
}

type badReader struct{}

func (badReader) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("i'm fine")
}
