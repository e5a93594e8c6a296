package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureWarnings(t *testing.T) *[]string {
	t.Helper()

	warnings := []string{}
	prev := warn
	warn = func(message string, keysAndValues ...any) {
		warnings = append(warnings, message)
	}
	t.Cleanup(func() { warn = prev })

	return &warnings
}

func phases(log *[]Phase, ps ...Phase) *GeneratorOperation {
	return NewGeneratorOperation(func(yield func(Yield) bool) {
		for _, p := range ps {
			if !yield(Yield{Phase: p}) {
				return
			}
			*log = append(*log, p)
		}
	})
}

type settleAfter struct {
	polls int
}

func (s *settleAfter) Vote() []Phase {
	s.polls--
	if s.polls <= 0 {
		return Vote(PhaseDone)
	}
	return Vote(PhaseWrite)
}

func (s *settleAfter) RunPhase(Phase) Operation { return nil }

func TestWinningPhase(t *testing.T) {
	tests := []struct {
		name  string
		votes []Phase
		prev  Phase
		want  Phase
	}{
		{"lowest wins", []Phase{PhaseFinish, PhaseWrite, PhaseRead}, phaseNone, PhaseRead},
		{"previous winner keeps winning", []Phase{PhaseRead, PhaseFinish}, PhaseFinish, PhaseFinish},
		{"lowest wins once previous is gone", []Phase{PhaseFinish, PhaseWrite}, PhaseRead, PhaseWrite},
		{"waiting is skipped", []Phase{PhaseWaiting, PhaseFinish}, phaseNone, PhaseFinish},
		{"waiting alone", []Phase{PhaseWaiting, PhaseWaiting}, PhaseWrite, PhaseWaiting},
		{"done once everyone is done", []Phase{PhaseDone, PhaseDone}, PhaseFinish, PhaseDone},
		{"no votes", nil, PhaseRead, PhaseDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, winningPhase(tt.votes, tt.prev))
		})
	}
}

func TestPhase(t *testing.T) {
	t.Run("single votes are shared", func(t *testing.T) {
		assert.Equal(t, []Phase{PhaseFlush}, Vote(PhaseFlush))
		assert.Same(t, &Vote(PhaseRead)[0], &Vote(PhaseRead)[0])
	})

	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "read", PhaseRead.String())
		assert.Equal(t, "waiting", PhaseWaiting.String())
		assert.Equal(t, "none", phaseNone.String())
	})

	t.Run("settled", func(t *testing.T) {
		assert.True(t, IsSettled([]Phase{PhaseFinish, PhaseDone}))
		assert.False(t, IsSettled([]Phase{PhaseFinish, PhaseWrite}))
	})
}

func TestGeneratorOperation(t *testing.T) {
	t.Run("starts lazily", func(t *testing.T) {
		started := false
		g := NewGeneratorOperation(func(yield func(Yield) bool) {
			started = true
			yield(Yield{Phase: PhaseWrite})
		})

		assert.Nil(t, g.RunPhase(PhaseWrite))
		assert.False(t, started)

		assert.Equal(t, []Phase{PhaseWrite}, g.Vote())
		assert.True(t, started)
	})

	t.Run("only runs the phase it voted for", func(t *testing.T) {
		log := []Phase{}
		g := phases(&log, PhaseRead, PhaseWrite)

		g.Vote()
		g.RunPhase(PhaseWrite)
		assert.Empty(t, log)

		g.RunPhase(PhaseRead)
		assert.Equal(t, []Phase{PhaseRead}, log)
		assert.Equal(t, PhaseWrite, g.Phase())
	})

	t.Run("warns about an extra operation on the first step", func(t *testing.T) {
		warnings := captureWarnings(t)

		g := NewGeneratorOperation(func(yield func(Yield) bool) {
			yield(Yield{Phase: PhaseRead, Extra: DoneOperation})
		})
		g.Vote()

		assert.Len(t, *warnings, 1)
	})

	t.Run("votes waiting until the wait operation settles", func(t *testing.T) {
		waitLog := []Phase{}
		wait := phases(&waitLog, PhaseWrite, PhaseFinish)

		g := NewStepOperation(func() Yield {
			return Yield{Phase: PhaseRead, Wait: wait}
		})

		assert.Equal(t, []Phase{PhaseWaiting}, g.Vote())
		assert.Nil(t, g.RunPhase(PhaseRead))

		wait.RunPhase(PhaseWrite)
		assert.Equal(t, []Phase{PhaseRead}, g.Vote())
	})

	t.Run("stays idle for the pass in which its wait operation settles", func(t *testing.T) {
		trace := ""

		nested := NewGeneratorOperation(func(yield func(Yield) bool) {
			if !yield(Yield{Phase: PhaseWrite}) {
				return
			}
			trace += "w"
			if !yield(Yield{Phase: PhaseFinish}) {
				return
			}
			trace += "f"
		})
		parent := NewGeneratorOperation(func(yield func(Yield) bool) {
			if !yield(Yield{Phase: PhaseWrite, Wait: nested}) {
				return
			}
			trace += "W"
		})

		p := NewParallelOperation(nested, parent)

		assert.Equal(t, []Phase{PhaseWrite, PhaseWaiting}, p.Vote())
		p.RunPhase(PhaseWrite)
		assert.Equal(t, "w", trace)

		assert.Equal(t, []Phase{PhaseFinish, PhaseWrite}, p.Vote())
		p.RunPhase(PhaseWrite)
		assert.Equal(t, "wW", trace)
	})

	t.Run("done after the body returns", func(t *testing.T) {
		g := NewGeneratorOperation(func(yield func(Yield) bool) {})

		assert.Equal(t, []Phase{PhaseDone}, g.Vote())
		assert.Nil(t, g.RunPhase(PhaseDone))
	})
}

func TestParallelOperation(t *testing.T) {
	t.Run("empty is done", func(t *testing.T) {
		assert.Equal(t, DoneOperation, NewParallelOperation())
		assert.Equal(t, DoneOperation, NewParallelOperation(nil, nil))
	})

	t.Run("concatenates votes", func(t *testing.T) {
		log := []Phase{}
		p := NewParallelOperation(phases(&log, PhaseRead), phases(&log, PhaseRead), phases(&log, PhaseWrite))

		assert.Equal(t, []Phase{PhaseRead, PhaseRead, PhaseWrite}, p.Vote())
	})

	t.Run("absorbs extra operations", func(t *testing.T) {
		log := []Phase{}
		extra := phases(&log, PhaseRead)
		parent := NewStepOperation(func() Yield {
			return Yield{Phase: PhaseWrite, Extra: extra}
		})

		p := NewParallelOperation(parent)
		p.Vote()

		assert.Nil(t, p.RunPhase(PhaseWrite))
		require.IsType(t, &ParallelOperation{}, p)
		assert.Equal(t, 2, p.(*ParallelOperation).Len())
		assert.Equal(t, []Phase{PhaseWrite, PhaseRead}, p.Vote())
	})
}

func TestScheduler(t *testing.T) {
	t.Run("warns on reentrant execution and still completes", func(t *testing.T) {
		warnings := captureWarnings(t)
		s := NewScheduler()
		log := []Phase{}

		s.Execute(NewGeneratorOperation(func(yield func(Yield) bool) {
			if !yield(Yield{Phase: PhaseWrite}) {
				return
			}
			assert.True(t, s.IsRunning())
			s.Execute(phases(&log, PhaseRead, PhaseFinish), nil)
			assert.True(t, s.IsRunning())
		}), nil)

		assert.False(t, s.IsRunning())
		assert.Equal(t, []Phase{PhaseRead, PhaseFinish}, log)
		assert.Equal(t, []string{"reentrant call to Execute"}, *warnings)
	})

	t.Run("counts runs, batches and rounds", func(t *testing.T) {
		s := NewScheduler()
		log := []Phase{}

		s.Execute(phases(&log, PhaseRead, PhaseFlush, PhaseWrite), nil)

		assert.Equal(t, Stats{Runs: 1, Batches: 2, Rounds: 3}, s.Stats())
	})

	t.Run("does not count polling while everything waits", func(t *testing.T) {
		warnings := captureWarnings(t)
		s := NewScheduler()
		ran := false

		// settles after being polled three times, outside of the operation tree
		external := &settleAfter{polls: 3}

		s.Execute(NewGeneratorOperation(func(yield func(Yield) bool) {
			if !yield(Yield{Phase: PhaseRead, Wait: external}) {
				return
			}
			ran = true
		}), nil)

		assert.True(t, ran)
		assert.Equal(t, Stats{Runs: 1, Batches: 1, Rounds: 1}, s.Stats())
		assert.Len(t, *warnings, 1)
	})

	t.Run("ignores a nil root", func(t *testing.T) {
		s := NewScheduler()
		s.Execute(nil, nil)

		assert.Equal(t, Stats{}, s.Stats())
	})
}

func TestRuntime(t *testing.T) {
	t.Run("one runtime per goroutine", func(t *testing.T) {
		r := GetRuntime()
		assert.Same(t, r, GetRuntime())

		other := make(chan *Runtime)
		go func() {
			defer ReleaseRuntime()
			other <- GetRuntime()
		}()

		assert.NotSame(t, r, <-other)
	})
}
