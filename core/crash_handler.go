package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer

	// Swappable for tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// SetCrashScreen registers the screen restored before a crash report is printed
func SetCrashScreen(s Finalizer) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	if s != nil {
		s.Fini()
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
