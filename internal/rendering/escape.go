// Package rendering converts resolved CV data into LaTeX markup.
package rendering

import "strings"

// lineBreak joins retained lines inside a paragraph.
const lineBreak = ` \\ `

// EscapeLaTeX escapes special LaTeX characters in text.
// Special characters: \ { } $ & % # ^ _ ~
// Escaping is not idempotent; callers must escape raw text exactly once.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// EscapeLines escapes text line by line. Each line is trimmed, empty lines
// are dropped, and the retained lines are joined with a LaTeX line break
// instead of a newline.
func EscapeLines(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	escaped := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		escaped = append(escaped, EscapeLaTeX(line))
	}

	return strings.Join(escaped, lineBreak)
}
