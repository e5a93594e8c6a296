package internal

// Operation is the unit of work driven by the Scheduler.
//
// Vote reports the phases the operation wants to run in next. RunPhase is
// called once a phase wins the vote; it may return an extra operation that
// the caller merges into the running batch, or nil.
type Operation interface {
	Vote() []Phase
	RunPhase(phase Phase) Operation
}

type doneOperation struct{}

// DoneOperation always votes done and never does any work.
var DoneOperation Operation = doneOperation{}

func (doneOperation) Vote() []Phase { return Vote(PhaseDone) }

func (doneOperation) RunPhase(Phase) Operation { return nil }
