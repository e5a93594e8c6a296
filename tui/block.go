package tui

import "github.com/mattn/go-runewidth"

// Block is the output of one command: a title row followed by the output
// lines wrapped to the width of the screen.
type Block struct {
	title string
	lines []string

	width       int
	minRows     int
	reserveRows int

	// rows wrapped at width, title included
	rows []string

	// set by the scroll area
	height int
	offset int
}

func NewBlock(title string, width int, cfg ScrollbackConfig) *Block {
	b := &Block{
		title:       title,
		width:       width,
		minRows:     cfg.MinBlockRows,
		reserveRows: cfg.ReserveRows,
	}
	b.rewrap()
	return b
}

func (b *Block) Title() string {
	return b.title
}

func (b *Block) Append(lines ...string) {
	b.lines = append(b.lines, lines...)
	for _, line := range lines {
		b.rows = append(b.rows, wrap(line, b.width)...)
	}
}

// SetWidth rewraps the block, it reports whether the width changed.
func (b *Block) SetWidth(width int) bool {
	if width == b.width {
		return false
	}

	b.width = width
	b.rewrap()
	return true
}

func (b *Block) Rows() []string {
	return b.rows
}

// Row returns the row shown at the given row of the block's window,
// and false for rows in the reserved space or past the end.
func (b *Block) Row(windowRow int) (string, bool) {
	i := b.offset + windowRow
	if windowRow < 0 || i < 0 || i >= len(b.rows) {
		return "", false
	}
	return b.rows[i], true
}

func (b *Block) Height() int {
	return b.height
}

func (b *Block) ScrollOffset() int {
	return b.offset
}

func (b *Block) SetHeight(height int) {
	b.height = height
}

func (b *Block) SetScrollOffset(offset int) {
	b.offset = offset
}

func (b *Block) MinHeight() int {
	return b.minRows
}

func (b *Block) VirtualHeight(containerHeight int) int {
	return len(b.rows)
}

func (b *Block) ReserveViewportHeight(containerHeight int) int {
	return b.reserveRows
}

func (b *Block) rewrap() {
	b.rows = wrap(b.title, b.width)
	for _, line := range b.lines {
		b.rows = append(b.rows, wrap(line, b.width)...)
	}
}

// wrap splits line into rows no wider than width cells.
// A wide rune never straddles two rows.
func wrap(line string, width int) []string {
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	var rows []string
	start := 0
	cells := 0

	for i, r := range line {
		w := runewidth.RuneWidth(r)
		if cells+w > width && i > start {
			rows = append(rows, line[start:i])
			start = i
			cells = 0
		}
		cells += w
	}

	return append(rows, line[start:])
}
