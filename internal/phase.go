package internal

type Phase int

const (
	PhaseRead Phase = iota
	PhaseWrite
	PhaseFlush
	PhaseFinish
	PhaseDone

	// never wins a vote on its own
	PhaseWaiting
)

// sentinel for "no winner yet"
const phaseNone Phase = -1

var phaseNames = [...]string{
	PhaseRead:    "read",
	PhaseWrite:   "write",
	PhaseFlush:   "flush",
	PhaseFinish:  "finish",
	PhaseDone:    "done",
	PhaseWaiting: "waiting",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "none"
	}

	return phaseNames[p]
}

// singleVotes holds one preallocated single-entry vote per phase,
// so operations voting for a single phase don't allocate on every round.
// It is filled once and must never be written to afterwards.
var singleVotes = func() [PhaseWaiting + 1][]Phase {
	var votes [PhaseWaiting + 1][]Phase
	for p := PhaseRead; p <= PhaseWaiting; p++ {
		votes[p] = []Phase{p}
	}
	return votes
}()

// Vote returns the shared single-entry vote for p.
func Vote(p Phase) []Phase {
	return singleVotes[p]
}

// IsSettled reports whether every vote is finish or done.
func IsSettled(votes []Phase) bool {
	for _, v := range votes {
		if v != PhaseFinish && v != PhaseDone {
			return false
		}
	}
	return true
}
