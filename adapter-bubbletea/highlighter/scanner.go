package highlighter

import (
	"strings"

	"github.com/ionut-t/cppmode/cstyle"
)

// segment is a run of a line that is either code or comment.
type segment struct {
	text    string
	comment bool
}

// splitLine separates comments from code on one line, starting in state and
// returning the state at the end of the line. Quoted literals are skipped so
// a // or /* inside a string is not taken for a comment.
func splitLine(line string, state cstyle.State) ([]segment, cstyle.State) {
	var segs []segment
	i := 0

	if state.InComment() {
		end := strings.Index(line, "*/")
		if end < 0 {
			if line != "" {
				segs = append(segs, segment{text: line, comment: true})
			}
			return segs, state
		}
		i = end + 2
		segs = append(segs, segment{text: line[:i], comment: true})
	}

	start := i
	flush := func(to int) {
		if to > start {
			segs = append(segs, segment{text: line[start:to]})
		}
	}

	for i < len(line) {
		switch c := line[i]; {
		case c == '"' || c == '\'':
			i = skipQuoted(line, i)
		case strings.HasPrefix(line[i:], "//"):
			flush(i)
			return append(segs, segment{text: line[i:], comment: true}), cstyle.StateStart
		case strings.HasPrefix(line[i:], "/*"):
			flush(i)
			end := strings.Index(line[i+2:], "*/")
			if end < 0 {
				next := cstyle.StateComment
				if strings.HasPrefix(line[i:], "/**") {
					next = cstyle.StateDocStart
				}
				return append(segs, segment{text: line[i:], comment: true}), next
			}
			stop := i + 2 + end + 2
			segs = append(segs, segment{text: line[i:stop], comment: true})
			i, start = stop, stop
		default:
			i++
		}
	}
	flush(len(line))
	return segs, cstyle.StateStart
}

// skipQuoted returns the index just past the literal opened at i, or the end
// of the line when it is not closed.
func skipQuoted(line string, i int) int {
	quote := line[i]
	for j := i + 1; j < len(line); j++ {
		switch line[j] {
		case '\\':
			j++
		case quote:
			return j + 1
		}
	}
	return len(line)
}
