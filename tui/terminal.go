package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	extraterm "github.com/sedwards2009/extraterm-sub000"
)

// Terminal renders a stack of output blocks with a shared scrollback.
//
// Changes are made through operations run by extraterm.Execute: sizes are
// read from the screen in the read phase, blocks and the scroll area are
// updated in the write phase, and the screen is drawn when finishing. The
// screen is shown once per batch.
type Terminal struct {
	screen tcell.Screen
	config *Config

	viewport  *Viewport
	scrollbar *Scrollbar
	area      *extraterm.ScrollArea
	blocks    []*Block

	headerStyle tcell.Style
	textStyle   tcell.Style
}

func NewTerminal(screen tcell.Screen, config *Config) *Terminal {
	if config == nil {
		config = DefaultConfig()
	}

	t := &Terminal{
		screen:      screen,
		config:      config,
		viewport:    NewViewport(screen),
		scrollbar:   NewScrollbar(config.Style),
		headerStyle: tcell.StyleDefault.Foreground(tcell.GetColor(config.Style.HeaderColor)).Bold(true),
		textStyle:   tcell.StyleDefault,
	}
	t.area = extraterm.NewScrollArea(t.viewport, t.scrollbar)

	return t
}

func (t *Terminal) Area() *extraterm.ScrollArea {
	return t.area
}

func (t *Terminal) Blocks() []*Block {
	return t.blocks
}

// Run executes op, showing the screen at the end of every batch.
func (t *Terminal) Run(op extraterm.Operation) {
	extraterm.Execute(op, t.batch)
}

func (t *Terminal) batch(fn func()) {
	fn()
	t.screen.Show()
}

// AddBlock returns an operation appending a new block to the scrollback.
func (t *Terminal) AddBlock(title string, lines ...string) (*Block, extraterm.Operation) {
	block := NewBlock(title, t.viewport.Width(), t.config.Scrollback)

	return block, extraterm.NewGeneratorOperation(func(yield func(extraterm.Yield) bool) {
		if !yield(extraterm.Yield{Phase: extraterm.PhaseRead}) {
			return
		}
		width := t.viewport.Width()

		if !yield(extraterm.Yield{Phase: extraterm.PhaseWrite}) {
			return
		}
		block.SetWidth(width)
		block.Append(lines...)
		t.blocks = append(t.blocks, block)
		t.area.AppendScrollable(block)

		if !yield(extraterm.Yield{Phase: extraterm.PhaseFinish}) {
			return
		}
		t.Draw()
	})
}

// AppendOutput returns an operation adding lines to an existing block.
func (t *Terminal) AppendOutput(block *Block, lines ...string) extraterm.Operation {
	return extraterm.NewGeneratorOperation(func(yield func(extraterm.Yield) bool) {
		if !yield(extraterm.Yield{Phase: extraterm.PhaseWrite}) {
			return
		}
		block.Append(lines...)
		t.area.UpdateScrollableSize(block)

		if !yield(extraterm.Yield{Phase: extraterm.PhaseFinish}) {
			return
		}
		t.Draw()
	})
}

// RemoveBlock returns an operation dropping block from the scrollback.
func (t *Terminal) RemoveBlock(block *Block) extraterm.Operation {
	return extraterm.NewGeneratorOperation(func(yield func(extraterm.Yield) bool) {
		if !yield(extraterm.Yield{Phase: extraterm.PhaseWrite}) {
			return
		}
		for i, b := range t.blocks {
			if b == block {
				t.blocks = append(t.blocks[:i], t.blocks[i+1:]...)
				break
			}
		}
		t.area.RemoveScrollable(block)

		if !yield(extraterm.Yield{Phase: extraterm.PhaseFinish}) {
			return
		}
		t.Draw()
	})
}

// Resize returns an operation adapting every block to the current screen size.
func (t *Terminal) Resize() extraterm.Operation {
	return extraterm.NewGeneratorOperation(func(yield func(extraterm.Yield) bool) {
		if !yield(extraterm.Yield{Phase: extraterm.PhaseRead}) {
			return
		}
		width := t.viewport.Width()

		if !yield(extraterm.Yield{Phase: extraterm.PhaseWrite}) {
			return
		}
		for _, b := range t.blocks {
			b.SetWidth(width)
		}
		t.area.Resize()

		// the old frame may be larger than the new one
		if !yield(extraterm.Yield{Phase: extraterm.PhaseFlush}) {
			return
		}
		t.screen.Clear()

		if !yield(extraterm.Yield{Phase: extraterm.PhaseFinish}) {
			return
		}
		t.Draw()
	})
}

// ScrollBy returns an operation moving the view by delta rows.
func (t *Terminal) ScrollBy(delta int) extraterm.Operation {
	return t.scroll(func() { t.area.ScrollTo(t.area.ScrollOffset() + delta) })
}

func (t *Terminal) ScrollToTop() extraterm.Operation {
	return t.scroll(func() { t.area.ScrollTo(0) })
}

func (t *Terminal) ScrollToBottom() extraterm.Operation {
	return t.scroll(func() { t.area.ScrollToBottom() })
}

// ScrollToBlock returns an operation bringing the whole of block into view,
// or its top when it is taller than the screen.
func (t *Terminal) ScrollToBlock(block *Block) extraterm.Operation {
	return t.scroll(func() {
		top, ok := t.area.ScrollableTop(block)
		if !ok {
			return
		}
		t.area.ScrollIntoView(top, top+len(block.Rows()))
	})
}

func (t *Terminal) scroll(fn func()) extraterm.Operation {
	return extraterm.NewGeneratorOperation(func(yield func(extraterm.Yield) bool) {
		if !yield(extraterm.Yield{Phase: extraterm.PhaseWrite}) {
			return
		}
		fn()

		if !yield(extraterm.Yield{Phase: extraterm.PhaseFinish}) {
			return
		}
		t.Draw()
	})
}

// HandleEvent turns a screen event into an operation, nil when the event is not handled.
func (t *Terminal) HandleEvent(ev tcell.Event) extraterm.Operation {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return t.Resize()

	case *tcell.EventKey:
		step := t.config.Scrollback.ScrollStep
		page := max(1, t.viewport.Height()-1)

		switch ev.Key() {
		case tcell.KeyUp:
			return t.ScrollBy(-step)
		case tcell.KeyDown:
			return t.ScrollBy(step)
		case tcell.KeyPgUp:
			return t.ScrollBy(-page)
		case tcell.KeyPgDn:
			return t.ScrollBy(page)
		case tcell.KeyHome:
			return t.ScrollToTop()
		case tcell.KeyEnd:
			return t.ScrollToBottom()
		}
	}

	return nil
}

// Draw paints the visible part of the scrollback and the scrollbar.
func (t *Terminal) Draw() {
	width, height := t.screen.Size()
	contentWidth := t.viewport.Width()

	physical := t.viewport.ScrollOffset()
	i, base := 0, 0

	for y := 0; y < height; y++ {
		row := physical + y

		for i < len(t.blocks) && row >= base+t.blocks[i].Height() {
			base += t.blocks[i].Height()
			i++
		}

		text, style := "", t.textStyle
		if i < len(t.blocks) {
			block := t.blocks[i]
			windowRow := row - base
			text, _ = block.Row(windowRow)
			if block.ScrollOffset()+windowRow == 0 {
				style = t.headerStyle
			}
		}

		t.drawRow(y, contentWidth, text, style)
	}

	if width > 0 {
		t.scrollbar.Draw(t.screen, width-1, height)
	}
}

func (t *Terminal) drawRow(y, width int, text string, style tcell.Style) {
	x := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if x+w > width {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x += max(1, w)
	}

	for ; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, t.textStyle)
	}
}
