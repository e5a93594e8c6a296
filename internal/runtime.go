package internal

// Runtime holds the scheduling state of one goroutine.
type Runtime struct {
	scheduler *Scheduler
}

func NewRuntime() *Runtime {
	return &Runtime{
		scheduler: NewScheduler(),
	}
}

func (r *Runtime) Execute(root Operation, boundary BatchBoundary) {
	r.scheduler.Execute(root, boundary)
}

func (r *Runtime) Scheduler() *Scheduler {
	return r.scheduler
}
