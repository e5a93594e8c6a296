// Package extraterm coordinates updates to a tall, growing stack of
// terminal output without layout thrashing.
//
// Work on the UI tree is expressed as Operations that vote for the phase
// they want to run in next (read, write, flush, finish, done). Execute
// runs every operation wanting the winning phase together, so reads and
// writes are never interleaved within a pass.
//
// A ScrollArea maps one virtual scrollback offset onto a list of
// scrollables, each rendered with a bounded real height.
package extraterm

import (
	"github.com/sedwards2009/extraterm-sub000/internal"
	"github.com/sedwards2009/extraterm-sub000/internal/scrollarea"
)

type Phase = internal.Phase

const (
	PhaseRead    = internal.PhaseRead
	PhaseWrite   = internal.PhaseWrite
	PhaseFlush   = internal.PhaseFlush
	PhaseFinish  = internal.PhaseFinish
	PhaseDone    = internal.PhaseDone
	PhaseWaiting = internal.PhaseWaiting
)

// Operation is anything the scheduler can drive.
type Operation = internal.Operation

// Yield is reported by a generator body each time it suspends.
type Yield = internal.Yield

// BatchBoundary wraps groups of phase executions, see Execute.
type BatchBoundary = internal.BatchBoundary

// NewGeneratorOperation creates an operation from a generator body.
// The body runs lazily, up to its first yield, when the operation is first asked for its vote.
// Each yield suspends the body until the yielded phase wins,
// returning from the body marks the operation done.
func NewGeneratorOperation(body func(yield func(Yield) bool)) Operation {
	return internal.NewGeneratorOperation(body)
}

// NewStepOperation creates an operation from an explicit step function.
// Each call to step must run the body up to its next suspension point.
func NewStepOperation(step func() Yield) Operation {
	return internal.NewStepOperation(step)
}

// NewParallelOperation merges operations into one. An empty list gives an operation that is already done.
func NewParallelOperation(operations ...Operation) Operation {
	return internal.NewParallelOperation(operations...)
}

// Execute runs root until it is done, using the scheduler of the calling goroutine.
//
// boundary, when not nil, is called around every batch of phases. A new
// batch starts after each flush phase.
func Execute(root Operation, boundary BatchBoundary) {
	internal.GetRuntime().Execute(root, boundary)
}

// Scrollable is a content region inside a ScrollArea.
type Scrollable = scrollarea.Scrollable

// Scrollbar receives the length, position and thumb size of a ScrollArea.
type Scrollbar = scrollarea.Scrollbar

// Container is the physically scrolled element holding every scrollable.
type Container = scrollarea.Container

type ScrollArea = scrollarea.Area

// NewScrollArea creates an empty scroll area. scrollbar may be nil.
func NewScrollArea(container Container, scrollbar Scrollbar) *ScrollArea {
	return scrollarea.New(container, scrollbar)
}
