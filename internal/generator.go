package internal

import "iter"

// Yield is what a generator body reports each time it suspends:
// the phase it wants to run in next, an optional extra operation to merge
// into the running batch, and an optional operation to wait on before
// that phase may run.
type Yield struct {
	Phase Phase
	Extra Operation
	Wait  Operation
}

// Step resumes a generator body by exactly one step.
type Step func() Yield

// Body is a generator body written as a push iterator.
// Returning from the body means the operation is done.
type Body func(yield func(Yield) bool)

type GeneratorOperation struct {
	step Step

	started bool

	// the phase reported by the last step
	phase Phase

	// outstanding operation this step has to wait on
	wait Operation

	// decided by the last Vote, RunPhase never polls wait itself
	waiting bool
}

func NewStepOperation(step Step) *GeneratorOperation {
	return &GeneratorOperation{
		step:  step,
		phase: phaseNone,
	}
}

// NewGeneratorOperation turns body into an operation, pulling one value
// out of it per step.
func NewGeneratorOperation(body Body) *GeneratorOperation {
	next, stop := iter.Pull(iter.Seq[Yield](body))

	return NewStepOperation(func() Yield {
		y, ok := next()
		if !ok {
			return Yield{Phase: PhaseDone}
		}

		if y.Phase == PhaseDone {
			// the body won't be resumed again, release it
			stop()
		}

		return y
	})
}

func (g *GeneratorOperation) Vote() []Phase {
	if !g.started {
		g.started = true

		y := g.step()
		if y.Extra != nil {
			warn("extra operation reported on the first step was ignored",
				"phase", y.Phase.String())
		}

		g.phase = y.Phase
		g.wait = y.Wait
	}

	g.waiting = g.pollWait()
	if g.waiting {
		return Vote(PhaseWaiting)
	}

	return Vote(g.phase)
}

func (g *GeneratorOperation) RunPhase(phase Phase) Operation {
	if !g.started || g.waiting || phase != g.phase || g.phase == PhaseDone {
		return nil
	}

	y := g.step()
	g.phase = y.Phase
	g.wait = y.Wait
	g.waiting = y.Wait != nil

	return y.Extra
}

// Phase returns the phase the body last asked for.
func (g *GeneratorOperation) Phase() Phase {
	return g.phase
}

// pollWait clears the wait operation once it has settled.
func (g *GeneratorOperation) pollWait() bool {
	if g.wait == nil {
		return false
	}

	if !IsSettled(g.wait.Vote()) {
		return true
	}

	g.wait = nil
	return false
}
