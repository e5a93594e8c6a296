package scrollarea

import "github.com/tliron/commonlog"

// the backend is registered by the application, so the logger is looked up on every use
var warn = func(message string, keysAndValues ...any) {
	commonlog.GetLogger("extraterm.scrollarea").Warning(message, keysAndValues...)
}

// Area lays out a stack of scrollables inside one container and maps a
// single virtual scroll offset onto them.
//
// Every mutating call computes a complete new snapshot and then writes only
// what differs from the previous one to the scrollables, the scrollbar and
// the container.
type Area struct {
	container Container
	scrollbar Scrollbar

	state *snapshot
}

func New(container Container, scrollbar Scrollbar) *Area {
	a := &Area{
		container: container,
		scrollbar: scrollbar,
	}

	a.commit(layout(container.Height(), 0, nil))
	return a
}

// AppendScrollable registers s below every other scrollable.
func (a *Area) AppendScrollable(s Scrollable) {
	if a.state.indexOf(s) != -1 {
		warn("scrollable is already registered")
		return
	}

	ss := a.query(s, a.state.containerHeight)
	scrollables := append(a.cloneScrollables(), ss)

	a.relayout(a.state.containerHeight, scrollables, a.state.isAtBottom())
}

// RemoveScrollable unregisters s.
func (a *Area) RemoveScrollable(s Scrollable) {
	i := a.state.indexOf(s)
	if i == -1 {
		warn("removing a scrollable that is not registered")
		return
	}

	scrollables := a.cloneScrollables()
	scrollables = append(scrollables[:i], scrollables[i+1:]...)

	a.relayout(a.state.containerHeight, scrollables, a.state.isAtBottom())
}

// ScrollTo moves the view to offset, clamped to the valid range, and
// returns the offset actually used.
func (a *Area) ScrollTo(offset int) int {
	a.commit(layout(a.state.containerHeight, offset, a.state.scrollables))
	return a.state.virtualScrollOffset
}

func (a *Area) ScrollToBottom() int {
	return a.ScrollTo(a.state.totalVirtualHeight() - a.state.containerHeight)
}

// ScrollIntoView scrolls as little as possible so that the virtual range
// [topY, bottomY) is visible. bottomY is exclusive: a range of n rows
// starting at y is passed as (y, y+n). The top edge wins when the range is
// taller than the container.
func (a *Area) ScrollIntoView(topY, bottomY int) {
	offset := a.state.virtualScrollOffset
	height := a.state.containerHeight

	if bottomY > offset+height {
		offset = bottomY - height
	}
	if topY < offset {
		offset = topY
	}

	if offset == a.state.virtualScrollOffset {
		return
	}

	a.ScrollTo(offset)
}

// UpdateScrollableHeights records new heights for s. A view pinned to the
// bottom stays pinned to the new bottom, otherwise the offset is kept.
func (a *Area) UpdateScrollableHeights(s Scrollable, minHeight, virtualHeight, reserveViewportHeight int) {
	i := a.state.indexOf(s)
	if i == -1 {
		warn("updating heights of a scrollable that is not registered")
		return
	}

	scrollables := a.cloneScrollables()
	scrollables[i].minHeight = max(0, minHeight)
	scrollables[i].virtualHeight = max(0, virtualHeight)
	scrollables[i].reserveViewportHeight = max(0, reserveViewportHeight)

	a.relayout(a.state.containerHeight, scrollables, a.state.isAtBottom())
}

// UpdateScrollableSize asks s for its current heights.
func (a *Area) UpdateScrollableSize(s Scrollable) {
	ss := a.query(s, a.state.containerHeight)
	a.UpdateScrollableHeights(s, ss.minHeight, ss.virtualHeight, ss.reserveViewportHeight)
}

// Resize re-reads the container height. Scrollable heights depend on it,
// so every scrollable is queried again.
func (a *Area) Resize() {
	height := max(0, a.container.Height())

	scrollables := a.cloneScrollables()
	for i := range scrollables {
		scrollables[i] = a.query(scrollables[i].scrollable, height)
	}

	a.relayout(height, scrollables, a.state.isAtBottom())
}

func (a *Area) ScrollOffset() int {
	return a.state.virtualScrollOffset
}

func (a *Area) TotalVirtualHeight() int {
	return a.state.totalVirtualHeight()
}

func (a *Area) ContainerHeight() int {
	return a.state.containerHeight
}

func (a *Area) IsAtBottom() bool {
	return a.state.isAtBottom()
}

// ScrollableTop returns the virtual offset at which s starts.
func (a *Area) ScrollableTop(s Scrollable) (int, bool) {
	top := 0
	for i := range a.state.scrollables {
		ss := &a.state.scrollables[i]
		if ss.scrollable == s {
			return top, true
		}
		top += ss.span()
	}
	return 0, false
}

// Len returns the number of registered scrollables.
func (a *Area) Len() int {
	return len(a.state.scrollables)
}

func (a *Area) query(s Scrollable, containerHeight int) scrollableState {
	return scrollableState{
		scrollable:            s,
		minHeight:             max(0, s.MinHeight()),
		virtualHeight:         max(0, s.VirtualHeight(containerHeight)),
		reserveViewportHeight: max(0, s.ReserveViewportHeight(containerHeight)),
	}
}

func (a *Area) cloneScrollables() []scrollableState {
	scrollables := make([]scrollableState, len(a.state.scrollables))
	copy(scrollables, a.state.scrollables)
	return scrollables
}

func (a *Area) relayout(containerHeight int, scrollables []scrollableState, pinToBottom bool) {
	offset := a.state.virtualScrollOffset

	next := layout(containerHeight, offset, scrollables)
	if pinToBottom && !next.isAtBottom() {
		next = layout(containerHeight, next.maxScrollOffset(), scrollables)
	}

	a.commit(next)
}
