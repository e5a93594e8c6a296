package scrollarea

type scrollableState struct {
	scrollable Scrollable

	minHeight             int
	virtualHeight         int
	reserveViewportHeight int

	// computed
	realHeight   int
	scrollOffset int
}

func (s *scrollableState) contentHeight() int {
	return s.virtualHeight + s.reserveViewportHeight
}

// span is how much of the virtual scroll range the scrollable occupies.
func (s *scrollableState) span() int {
	return max(s.realHeight, s.contentHeight())
}

// scrollRange is how far the scrollable can scroll its own content.
func (s *scrollableState) scrollRange() int {
	return s.span() - s.realHeight
}

// snapshot is one immutable layout of the whole area.
type snapshot struct {
	containerHeight       int
	virtualScrollOffset   int
	containerScrollOffset int

	scrollbarLength    int
	scrollbarPosition  int
	scrollbarThumbSize int

	scrollables []scrollableState
}

func (s *snapshot) totalVirtualHeight() int {
	total := 0
	for i := range s.scrollables {
		total += s.scrollables[i].span()
	}
	return total
}

func (s *snapshot) maxScrollOffset() int {
	return max(0, s.totalVirtualHeight()-s.containerHeight)
}

func (s *snapshot) isAtBottom() bool {
	return s.virtualScrollOffset >= s.maxScrollOffset()
}

func (s *snapshot) indexOf(scrollable Scrollable) int {
	for i := range s.scrollables {
		if s.scrollables[i].scrollable == scrollable {
			return i
		}
	}
	return -1
}

// layout builds a new snapshot from the given inputs. The scrollables are
// copied, the caller's slice is never written to.
func layout(containerHeight, scrollOffset int, scrollables []scrollableState) *snapshot {
	next := &snapshot{
		containerHeight: max(0, containerHeight),
		scrollables:     make([]scrollableState, len(scrollables)),
	}
	copy(next.scrollables, scrollables)

	for i := range next.scrollables {
		ss := &next.scrollables[i]
		ss.realHeight = min(max(ss.contentHeight(), ss.minHeight), next.containerHeight)
	}

	offset := min(max(scrollOffset, 0), next.maxScrollOffset())
	next.virtualScrollOffset = offset

	realBase := 0
	virtualBase := 0
	found := false
	last := len(next.scrollables) - 1

	for i := range next.scrollables {
		ss := &next.scrollables[i]
		span := ss.span()

		switch {
		case found:
			// below the visible position
			ss.scrollOffset = 0

		case offset >= virtualBase+span && i < last:
			// above the visible position
			ss.scrollOffset = ss.scrollRange()

		default:
			local := offset - virtualBase
			ss.scrollOffset = min(local, ss.scrollRange())
			next.containerScrollOffset = realBase + local - ss.scrollOffset
			found = true
		}

		realBase += ss.realHeight
		virtualBase += span
	}

	next.scrollbarLength = virtualBase
	next.scrollbarPosition = offset
	next.scrollbarThumbSize = next.containerHeight

	return next
}
