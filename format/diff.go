package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 3

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// Diff returns a unified diff between the old and new contents of filename,
// or "" if they are equal.
func Diff(filename string, old, new []byte) string {
	if bytes.Equal(old, new) {
		return ""
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(old), string(new))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var ls []diffLine
	for _, d := range diffs {
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text != "" {
				ls = append(ls, diffLine{d.Type, text})
			}
		}
	}

	var out strings.Builder
	fmt.Fprintf(&out, "--- %s.orig\n+++ %s\n", filename, filename)
	oldLine, newLine := 0, 0 // lines before ls[i]
	advance := func(l diffLine) {
		if l.op != diffmatchpatch.DiffInsert {
			oldLine++
		}
		if l.op != diffmatchpatch.DiffDelete {
			newLine++
		}
	}
	i := 0
	for i < len(ls) {
		for i < len(ls) && ls[i].op == diffmatchpatch.DiffEqual {
			advance(ls[i])
			i++
		}
		if i == len(ls) {
			break
		}
		start := max(i-diffContext, 0)
		for k := start; k < i; k++ {
			oldLine--
			newLine--
		}
		end := hunkEnd(ls, i)

		hunk := ls[start:end]
		var oldN, newN int
		for _, l := range hunk {
			if l.op != diffmatchpatch.DiffInsert {
				oldN++
			}
			if l.op != diffmatchpatch.DiffDelete {
				newN++
			}
		}
		fmt.Fprintf(&out, "@@ -%s +%s @@\n", hunkRange(oldLine, oldN), hunkRange(newLine, newN))
		for _, l := range hunk {
			switch l.op {
			case diffmatchpatch.DiffDelete:
				out.WriteByte('-')
			case diffmatchpatch.DiffInsert:
				out.WriteByte('+')
			default:
				out.WriteByte(' ')
			}
			out.WriteString(l.text)
			if !strings.HasSuffix(l.text, "\n") {
				out.WriteString("\n\\ No newline at end of file\n")
			}
			advance(l)
		}
		i = end
	}
	return out.String()
}

// hunkEnd returns the end of the hunk holding the change at ls[i].
// Changes separated by few unchanged lines share a hunk.
func hunkEnd(ls []diffLine, i int) int {
	end := i
	for end < len(ls) {
		if ls[end].op != diffmatchpatch.DiffEqual {
			end++
			continue
		}
		j := end
		for j < len(ls) && ls[j].op == diffmatchpatch.DiffEqual {
			j++
		}
		if j == len(ls) || j-end > 2*diffContext {
			return min(end+diffContext, len(ls))
		}
		end = j
	}
	return end
}

func hunkRange(before, n int) string {
	if n == 0 {
		return fmt.Sprintf("%d,0", before)
	}
	if n == 1 {
		return fmt.Sprintf("%d", before+1)
	}
	return fmt.Sprintf("%d,%d", before+1, n)
}
