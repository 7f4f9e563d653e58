package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// unquote returns the value of a string or bytes literal as it appears in
// the source, prefix and quotes included. The value of a bytes literal is
// returned as a string of raw bytes.
func unquote(lit string) (string, error) {
	i := strings.IndexAny(lit, `'"`)
	if i < 0 {
		return "", errors.New("missing string quotes")
	}
	prefix := strings.ToLower(lit[:i])
	raw := strings.Contains(prefix, "r")
	isBytes := strings.Contains(prefix, "b")

	body := lit[i:]
	q := body[:1]
	if len(body) >= 6 && strings.HasPrefix(body, q+q+q) {
		q = body[:3]
	}
	if len(body) < 2*len(q) || !strings.HasSuffix(body, q) {
		return "", errors.New("string not terminated")
	}
	body = body[len(q) : len(body)-len(q)]
	body = strings.ReplaceAll(body, "\r\n", "\n")

	if isBytes {
		for _, r := range body {
			if r >= utf8.RuneSelf {
				return "", errors.New("bytes can only contain ASCII literal characters")
			}
		}
	}
	if raw {
		return body, nil
	}

	var b strings.Builder
	for len(body) > 0 {
		c := body[0]
		if c != '\\' {
			b.WriteByte(c)
			body = body[1:]
			continue
		}
		if len(body) == 1 {
			return "", errors.New("string not terminated")
		}
		c = body[1]
		body = body[2:]
		switch c {
		case '\n':
			// Line continuation.
		case '\\', '\'', '"':
			b.WriteByte(c)
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			n := 1
			for n < 3 && n <= len(body) && isOctal(body, n-1) {
				n++
			}
			v, _ := strconv.ParseUint(string(c)+body[:n-1], 8, 16)
			body = body[n-1:]
			if err := writeCode(&b, rune(v), isBytes); err != nil {
				return "", err
			}
		case 'x':
			v, err := hexEscape(&body, 2, c)
			if err != nil {
				return "", err
			}
			if err := writeCode(&b, v, isBytes); err != nil {
				return "", err
			}
		case 'u', 'U':
			if isBytes {
				b.WriteByte('\\')
				b.WriteByte(c)
				break
			}
			size := 4
			if c == 'U' {
				size = 8
			}
			v, err := hexEscape(&body, size, c)
			if err != nil {
				return "", err
			}
			if !utf8.ValidRune(v) {
				return "", fmt.Errorf("illegal Unicode character \\%c%0*x", c, size, v)
			}
			b.WriteRune(v)
		case 'N':
			if isBytes {
				b.WriteString(`\N`)
				break
			}
			v, err := nameEscape(&body)
			if err != nil {
				return "", err
			}
			b.WriteRune(v)
		default:
			// Unknown escapes are kept as written.
			b.WriteByte('\\')
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func isOctal(s string, i int) bool {
	return i < len(s) && '0' <= s[i] && s[i] <= '7'
}

func hexEscape(body *string, size int, c byte) (rune, error) {
	s := *body
	if len(s) < size {
		return 0, fmt.Errorf("truncated \\%c escape", c)
	}
	v, err := strconv.ParseUint(s[:size], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("truncated \\%c escape", c)
	}
	*body = s[size:]
	return rune(v), nil
}

// writeCode writes a character given by its code: a raw byte
// for bytes literals, a code point otherwise.
func writeCode(b *strings.Builder, v rune, isBytes bool) error {
	if !isBytes {
		b.WriteRune(v)
		return nil
	}
	if v > 0xff {
		return errors.New("octal escape out of range in bytes literal")
	}
	b.WriteByte(byte(v))
	return nil
}
