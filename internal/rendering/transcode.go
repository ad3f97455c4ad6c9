package rendering

import "strings"

// bulletPrefix marks a line as a list item after trimming.
const bulletPrefix = "- "

// BlockKind discriminates the block types produced by ScanBlocks
type BlockKind int

const (
	// ProseKind is a run of consecutive non-bullet lines
	ProseKind BlockKind = iota
	// ListKind is a run of consecutive bullet lines
	ListKind
)

// Block is one escaped unit of transcoded text: either a prose run or a
// bullet list. Lines hold trimmed, escaped content; for ListKind the bullet
// prefix is already stripped.
type Block struct {
	Kind  BlockKind
	Lines []string
}

// ScanBlocks walks text line by line and groups it into ordered prose and
// list blocks. A line belongs to a list iff its trimmed form starts with
// "- ". Empty lines neither extend nor start a block. All content is escaped
// here, exactly once.
func ScanBlocks(text string) []Block {
	var blocks []Block
	var prose []string
	var items []string

	flushProse := func() {
		if len(prose) > 0 {
			blocks = append(blocks, Block{Kind: ProseKind, Lines: prose})
			prose = nil
		}
	}
	flushItems := func() {
		if len(items) > 0 {
			blocks = append(blocks, Block{Kind: ListKind, Lines: items})
			items = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, bulletPrefix):
			flushProse()
			items = append(items, EscapeLaTeX(strings.TrimSpace(trimmed[len(bulletPrefix):])))
		case trimmed != "":
			flushItems()
			prose = append(prose, EscapeLaTeX(trimmed))
		}
	}

	flushItems()
	flushProse()

	return blocks
}

// JoinBlocks assembles scanned blocks into LaTeX. Prose lines are joined
// with a line break, list blocks become one itemize environment with one
// item per line, and blocks are separated by a blank line.
func JoinBlocks(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		switch block.Kind {
		case ListKind:
			var sb strings.Builder
			sb.WriteString("\\begin{itemize}\n")
			for _, item := range block.Lines {
				sb.WriteString("  \\item " + item + "\n")
			}
			sb.WriteString("\\end{itemize}")
			parts = append(parts, sb.String())
		default:
			parts = append(parts, strings.Join(block.Lines, lineBreak))
		}
	}
	return strings.Join(parts, "\n\n")
}

// Transcode converts free-form text into LaTeX, turning "- " bullet runs
// into itemize lists and everything else into line-break-joined paragraphs.
func Transcode(text string) string {
	return JoinBlocks(ScanBlocks(text))
}
