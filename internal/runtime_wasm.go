//go:build wasm

package internal

// js/wasm runs every goroutine on the browser's single thread, they all share one runtime.
var mainRuntime = NewRuntime()

func GetRuntime() *Runtime {
	return mainRuntime
}

func ReleaseRuntime() {}
