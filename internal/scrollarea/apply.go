package scrollarea

// commit makes next the current snapshot and writes the differences
// against the previous one. With no previous snapshot everything is written.
func (a *Area) commit(next *snapshot) {
	prev := a.state
	a.state = next

	for i := range next.scrollables {
		ss := &next.scrollables[i]

		var old *scrollableState
		if prev != nil {
			if j := prev.indexOf(ss.scrollable); j != -1 {
				old = &prev.scrollables[j]
			}
		}

		if old == nil || old.realHeight != ss.realHeight {
			ss.scrollable.SetHeight(ss.realHeight)
		}
		if old == nil || old.scrollOffset != ss.scrollOffset {
			ss.scrollable.SetScrollOffset(ss.scrollOffset)
		}
	}

	if a.scrollbar != nil {
		if prev == nil || prev.scrollbarLength != next.scrollbarLength {
			a.scrollbar.SetLength(next.scrollbarLength)
		}
		if prev == nil || prev.scrollbarPosition != next.scrollbarPosition {
			a.scrollbar.SetPosition(next.scrollbarPosition)
		}
		if prev == nil || prev.scrollbarThumbSize != next.scrollbarThumbSize {
			a.scrollbar.SetThumbSize(next.scrollbarThumbSize)
		}
	}

	if prev == nil || prev.containerScrollOffset != next.containerScrollOffset {
		a.container.SetScrollOffset(next.containerScrollOffset)
	}
}
