package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Scrollbar is a one column scrollbar drawn at the right edge of the screen.
type Scrollbar struct {
	length    int
	position  int
	thumbSize int

	track rune
	thumb rune
	style tcell.Style
}

func NewScrollbar(style StyleConfig) *Scrollbar {
	return &Scrollbar{
		track: firstRune(style.ScrollbarChar, '│'),
		thumb: firstRune(style.ThumbChar, '█'),
		style: tcell.StyleDefault,
	}
}

func (s *Scrollbar) SetLength(length int)     { s.length = length }
func (s *Scrollbar) SetPosition(position int) { s.position = position }
func (s *Scrollbar) SetThumbSize(size int)    { s.thumbSize = size }

// Thumb returns the first row and the number of rows of the thumb on a
// track of the given height.
func (s *Scrollbar) Thumb(height int) (int, int) {
	if height <= 0 {
		return 0, 0
	}
	if s.length <= s.thumbSize || s.length <= 0 {
		return 0, height
	}

	size := max(1, s.thumbSize*height/s.length)
	top := s.position * height / s.length

	return min(top, height-size), size
}

func (s *Scrollbar) Draw(screen tcell.Screen, x, height int) {
	top, size := s.Thumb(height)

	for y := 0; y < height; y++ {
		r := s.track
		if y >= top && y < top+size {
			r = s.thumb
		}
		screen.SetContent(x, y, r, nil, s.style)
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		if runewidth.RuneWidth(r) == 1 {
			return r
		}
		break
	}
	return fallback
}
