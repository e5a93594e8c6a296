package internal

// BatchBoundary wraps a group of phase executions in an external batching
// primitive (for instance a single screen refresh). It must call fn exactly once.
type BatchBoundary func(fn func())

func directBoundary(fn func()) {
	fn()
}

type Batcher struct {
	boundary BatchBoundary

	// number of boundary calls made so far
	calls int
}

func NewBatcher(boundary BatchBoundary) *Batcher {
	if boundary == nil {
		boundary = directBoundary
	}

	return &Batcher{boundary: boundary}
}

// Batch runs fn inside one boundary call.
func (b *Batcher) Batch(fn func()) {
	b.calls++
	b.boundary(fn)
}

func (b *Batcher) Calls() int {
	return b.calls
}
