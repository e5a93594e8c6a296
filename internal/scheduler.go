package internal

type Stats struct {
	// completed Execute calls
	Runs int

	// boundary invocations across all runs
	Batches int

	// phases executed across all runs
	Rounds int
}

type Scheduler struct {
	// set while Execute is on the stack
	running bool

	stats Stats
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Execute drives root until it votes done.
//
// Each boundary call runs rounds of vote-then-run until either the root is
// done or a flush phase has been run, in which case a fresh boundary call
// is started. An operation that never votes done keeps Execute looping.
func (s *Scheduler) Execute(root Operation, boundary BatchBoundary) {
	if root == nil {
		return
	}

	if s.running {
		warn("reentrant call to Execute")
	}
	wasRunning := s.running
	s.running = true
	defer func() { s.running = wasRunning }()

	batcher := NewBatcher(boundary)
	prev := phaseNone
	done := false
	deadlockReported := false

	for !done {
		batcher.Batch(func() {
			for {
				winner := winningPhase(root.Vote(), prev)

				switch winner {
				case PhaseDone:
					done = true
					return

				case PhaseWaiting:
					if !deadlockReported {
						deadlockReported = true
						warn("every operation is waiting, nothing can make progress")
					}
					// nothing to run, keep polling
					continue
				}

				if extra := root.RunPhase(winner); extra != nil {
					root = NewParallelOperation(root, extra)
				}
				s.stats.Rounds++
				prev = winner

				if winner == PhaseFlush {
					return
				}
			}
		})
	}

	s.stats.Runs++
	s.stats.Batches += batcher.Calls()
}

func (s *Scheduler) IsRunning() bool {
	return s.running
}

func (s *Scheduler) Stats() Stats {
	return s.stats
}

// winningPhase picks the phase to run next. The previous winner keeps
// winning while anyone still votes for it, so operations move through a
// phase together. Otherwise the lowest phase wins. No votes at all means
// nothing is left to do.
func winningPhase(votes []Phase, prev Phase) Phase {
	if len(votes) == 0 {
		return PhaseDone
	}

	winner := PhaseWaiting

	for _, v := range votes {
		if v == PhaseWaiting {
			continue
		}
		if v == prev {
			return prev
		}
		if v < winner {
			winner = v
		}
	}

	return winner
}
