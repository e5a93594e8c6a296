//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// goroutine id -> *Runtime
var runtimes sync.Map

// GetRuntime returns the runtime of the calling goroutine, creating it on first use.
// Schedulers are never shared between goroutines.
func GetRuntime() *Runtime {
	id := goid.Get()

	if r, ok := runtimes.Load(id); ok {
		return r.(*Runtime)
	}

	r, _ := runtimes.LoadOrStore(id, NewRuntime())
	return r.(*Runtime)
}

// ReleaseRuntime forgets the runtime of the calling goroutine.
// Long lived programs starting many goroutines that execute operations
// should call it before those goroutines exit.
func ReleaseRuntime() {
	runtimes.Delete(goid.Get())
}
