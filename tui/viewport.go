package tui

import "github.com/gdamore/tcell/v2"

// Viewport is the screen area the blocks are stacked in. The rightmost
// column is left to the scrollbar.
type Viewport struct {
	screen tcell.Screen
	offset int
}

func NewViewport(screen tcell.Screen) *Viewport {
	return &Viewport{screen: screen}
}

func (v *Viewport) Height() int {
	_, h := v.screen.Size()
	return h
}

// Width is the number of columns available to block content.
func (v *Viewport) Width() int {
	w, _ := v.screen.Size()
	return max(0, w-1)
}

func (v *Viewport) ScrollOffset() int {
	return v.offset
}

func (v *Viewport) SetScrollOffset(offset int) {
	v.offset = offset
}
