package scrollarea

// Scrollable is a content region laid out by an Area.
// Implementations are compared by identity, so use pointer types.
type Scrollable interface {
	SetHeight(height int)
	SetScrollOffset(offset int)

	MinHeight() int
	VirtualHeight(containerHeight int) int
	ReserveViewportHeight(containerHeight int) int
}

type Scrollbar interface {
	SetLength(length int)
	SetPosition(position int)
	SetThumbSize(size int)
}

// Container is the physically scrolled element holding every scrollable.
type Container interface {
	Height() int
	SetScrollOffset(offset int)
}
