package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// runesByName maps upper-case character names to runes. Ranges that
// runenames reports as "<...>" have no individual names and are left out.
var runesByName = sync.OnceValue(func() map[string]rune {
	m := make(map[string]rune, 40000)
	for r := rune(0); r <= unicode.MaxRune; r++ {
		name := runenames.Name(r)
		if name == "" || strings.HasPrefix(name, "<") {
			continue
		}
		m[strings.ToUpper(name)] = r
	}
	return m
})

const cjkPrefix = "CJK UNIFIED IDEOGRAPH-"

// lookupRune returns the character with the given name.
// Case is ignored.
func lookupRune(name string) (rune, error) {
	upper := strings.ToUpper(name)
	if r, ok := runesByName()[upper]; ok {
		return r, nil
	}
	if hex, ok := strings.CutPrefix(upper, cjkPrefix); ok && (len(hex) == 4 || len(hex) == 5) {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err == nil && unicode.Is(unicode.Unified_Ideograph, rune(v)) {
			return rune(v), nil
		}
	}
	return 0, fmt.Errorf("unknown Unicode character name %q", name)
}

// nameEscape decodes the {NAME} part of a \N escape at the start of body
// and advances body past it.
func nameEscape(body *string) (rune, error) {
	s := *body
	end := strings.IndexByte(s, '}')
	if !strings.HasPrefix(s, "{") || end < 2 {
		return 0, errors.New(`malformed \N character escape`)
	}
	r, err := lookupRune(s[1:end])
	if err != nil {
		return 0, err
	}
	*body = s[end+1:]
	return r, nil
}
