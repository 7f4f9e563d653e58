package printer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/Siecje/coral/ast"
)

// Infinity has no literal; a decimal that overflows to it does.
const infinity = "1e309"

func isNegative(n *ast.Num) bool {
	if n.Int != nil && !n.Imag {
		return n.Int.Sign() < 0
	}
	return math.Signbit(n.Float)
}

// formatNum returns the canonical form of a numeric literal.
// Floats use the shortest representation that reads back to the same
// value, switching to scientific notation for exponents below -4 or
// from 16 up.
func formatNum(n *ast.Num) (string, error) {
	if n.Int != nil && !n.Imag {
		return n.Int.String(), nil
	}
	s, err := formatFloat(n.Float, !n.Imag)
	if err != nil {
		return "", err
	}
	if n.Imag {
		s += "j"
	}
	return s, nil
}

func formatFloat(f float64, point bool) (string, error) {
	switch {
	case math.IsNaN(f):
		return "", errors.New("cannot format NaN")
	case math.IsInf(f, 1):
		return infinity, nil
	case math.IsInf(f, -1):
		return "-" + infinity, nil
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	if err != nil {
		return "", fmt.Errorf("formatting %v: %v", f, err)
	}
	if exp < -4 || exp >= 16 {
		return s, nil
	}
	s = strconv.FormatFloat(f, 'f', -1, 64)
	if point && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s, nil
}

// quote returns s as a double-quoted string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			switch {
			case r < ' ' || r == 0x7f:
				fmt.Fprintf(&b, `\x%02x`, r)
			case unicode.IsPrint(r):
				b.WriteRune(r)
			case r <= 0xff:
				fmt.Fprintf(&b, `\x%02x`, r)
			case r <= 0xffff:
				fmt.Fprintf(&b, `\u%04x`, r)
			default:
				fmt.Fprintf(&b, `\U%08x`, r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// quoteBytes returns s as a double-quoted bytes literal.
func quoteBytes(s string) string {
	var b strings.Builder
	b.WriteString(`b"`)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < ' ' || c >= 0x7f {
				fmt.Fprintf(&b, `\x%02x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
