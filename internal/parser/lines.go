package parser

// Sentinel is appended to every line before extraction so the last field is
// always closed by a terminator token.
const Sentinel = "\n"

// Line is one non-empty physical line of the source text.
type Line struct {
	// Number is the 1-indexed physical line number. CRLF counts as one break.
	Number int
	// Offset is the byte offset of the line's first character in the source text.
	Offset int
	// Text is the line content followed by Sentinel.
	Text string
}

// Content returns the line without its sentinel.
func (l Line) Content() string {
	return l.Text[:len(l.Text)-len(Sentinel)]
}

// SplitLines breaks text on every CR and every LF, drops empty segments and
// appends Sentinel to each remaining segment.
//
// Whitespace-only segments are kept; only segments that are empty before the
// sentinel is appended are removed.
func SplitLines(text string) []Line {
	lines := make([]Line, 0, 16)
	number := 1
	start := 0

	flush := func(end int) {
		if end > start {
			lines = append(lines, Line{
				Number: number,
				Offset: start,
				Text:   text[start:end] + Sentinel,
			})
		}
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			flush(i)
			start = i + 1
			if i+1 < len(text) && text[i+1] == '\n' {
				// The LF of a CRLF pair closes an empty segment.
				i++
				start = i + 1
			}
			number++
		case '\n':
			flush(i)
			start = i + 1
			number++
		}
	}
	flush(len(text))

	return lines
}
