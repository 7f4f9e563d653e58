package format_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Siecje/coral/format"
	"github.com/Siecje/coral/printer"
)

func TestSource(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"#a bad comment\n", "# a bad comment\n"},
		{"'single quotes'\n", "\"single quotes\"\n"},
		{"42E+84\n", "4.2e+85\n"},
		{"(1,)", "(1,)\n"},
		{"[]\n()\n{}\n", "[]\n()\n{}\n"},
		{"lambda a, b, c=1, *d, e=2: 0\n", "lambda a, b, c=1, *d, e=2: 0\n"},
		{"x  #c\n", "x  # c\n"},
		{"a;b # c\n", "a\nb  # c\n"},
		{"[1,   # one\n  2]\n", "# one\n[1, 2]\n"},
		{"#!/usr/bin/env xonsh\n1+2\n", "#!/usr/bin/env xonsh\n1 + 2\n"},
		{"\n\n# only\n\n", "# only\n"},
		{"f( a ,b= 1 )\r\n", "f(a, b=1)\n"},
		{"'\\N{BULLET}'\n", "\"\u2022\"\n"},
		{"", "\n"},
	}
	for _, tt := range tests {
		got, err := format.Source([]byte(tt.in))
		if err != nil {
			t.Errorf("Source(%q): %v", tt.in, err)
			continue
		}
		if string(got) != tt.out {
			t.Errorf("Source(%q) = %q, want %q", tt.in, got, tt.out)
		}
		again, err := format.Source(got)
		if err != nil {
			t.Errorf("Source(%q): %v", got, err)
			continue
		}
		if !bytes.Equal(again, got) {
			t.Errorf("not idempotent: %q, then %q", got, again)
		}
	}
}

func TestPipeErrors(t *testing.T) {
	tests := []struct {
		src string
		err string
	}{
		{"a b\n", `test.xsh:1:3: unexpected Ident("b")`},
		{"'abc", "test.xsh:1:5: string not terminated"},
		{"def f(): pass\n", "test.xsh:1:1: unsupported statement: def"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		err := format.Pipe("test.xsh", &out, strings.NewReader(tt.src), nil)
		if err == nil {
			t.Errorf("Pipe(%q): no error, want %s", tt.src, tt.err)
			continue
		}
		if err.Error() != tt.err {
			t.Errorf("Pipe(%q):\n got %s\nwant %s", tt.src, err, tt.err)
		}
		if out.Len() > 0 {
			t.Errorf("Pipe(%q) wrote %q", tt.src, out.String())
		}
	}
}

type badReader struct{}

func (badReader) Read([]byte) (int, error) { return 0, errors.New("bad read") }

func TestPipe(t *testing.T) {
	var out bytes.Buffer
	cfg := &printer.Config{UseTabs: true}
	if err := format.Pipe("test.xsh", &out, strings.NewReader("x  #c\n"), cfg); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "x  # c\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if err := format.Pipe("test.xsh", &out, badReader{}, nil); err == nil {
		t.Error("no error from a failing reader")
	}
}

func TestDiff(t *testing.T) {
	if d := format.Diff("f.xsh", []byte("a\n"), []byte("a\n")); d != "" {
		t.Errorf("diff of equal inputs: %q", d)
	}

	got := format.Diff("f.xsh", []byte("a\nb\n"), []byte("a\nc\n"))
	want := "--- f.xsh.orig\n+++ f.xsh\n@@ -1,2 +1,2 @@\n a\n-b\n+c\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	old := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n"
	new := "1\nX\n3\n4\n5\n6\n7\n8\n9\n10\nY\n12\n"
	got = format.Diff("f.xsh", []byte(old), []byte(new))
	if n := strings.Count(got, "@@ -"); n != 2 {
		t.Errorf("got %d hunks, want 2:\n%s", n, got)
	}
	if !strings.Contains(got, "@@ -1,5 +1,5 @@\n 1\n-2\n+X\n 3\n 4\n 5\n") {
		t.Errorf("first hunk missing:\n%s", got)
	}
}
