package internal

// ParallelOperation drives several operations as one.
// Extra operations returned by its children are kept as new children,
// so they take part in every following round.
type ParallelOperation struct {
	operations []Operation
}

func NewParallelOperation(operations ...Operation) Operation {
	ops := make([]Operation, 0, len(operations))
	for _, op := range operations {
		if op != nil {
			ops = append(ops, op)
		}
	}

	if len(ops) == 0 {
		return DoneOperation
	}

	return &ParallelOperation{operations: ops}
}

// Vote concatenates the votes of every child, duplicates included.
func (p *ParallelOperation) Vote() []Phase {
	votes := make([]Phase, 0, len(p.operations))
	for _, op := range p.operations {
		votes = append(votes, op.Vote()...)
	}
	return votes
}

// RunPhase runs the phase on every child registered before the call.
// It never hands extra operations back to its caller.
func (p *ParallelOperation) RunPhase(phase Phase) Operation {
	current := p.operations

	for _, op := range current {
		if extra := op.RunPhase(phase); extra != nil {
			p.operations = append(p.operations, extra)
		}
	}

	return nil
}

// Len returns the number of children, spawned ones included.
func (p *ParallelOperation) Len() int {
	return len(p.operations)
}
