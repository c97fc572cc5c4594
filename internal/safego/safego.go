package safego

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/andyrewlee/dragscroll/internal/logging"
)

// ErrPanicked is wrapped by RunErr when fn panics.
var ErrPanicked = errors.New("goroutine panicked")

// PanicHandler receives panic details from recovered goroutines.
type PanicHandler func(name string, recovered any, stack []byte)

var (
	panicHandlerMu sync.RWMutex
	panicHandler   PanicHandler
)

// SetPanicHandler registers a global handler for recovered panics.
func SetPanicHandler(handler PanicHandler) {
	panicHandlerMu.Lock()
	panicHandler = handler
	panicHandlerMu.Unlock()
}

func label(name string) string {
	if name == "" {
		return "goroutine"
	}
	return name
}

func report(name string, r any) {
	stack := debug.Stack()
	logging.Error("panic in %s: %v\n%s", name, r, stack)
	panicHandlerMu.RLock()
	handler := panicHandler
	panicHandlerMu.RUnlock()
	if handler != nil {
		func() {
			defer func() { _ = recover() }()
			handler(name, r, stack)
		}()
	}
}

// Run executes fn and converts panics into logged errors.
// This does not recover from runtime-fatal errors (e.g., concurrent map writes).
func Run(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			report(label(name), r)
		}
	}()
	fn()
}

// Go runs fn in a new goroutine with panic recovery.
func Go(name string, fn func()) {
	go Run(name, fn)
}

// RunErr executes fn with panic recovery and logs its error. Context
// cancellation is treated as a clean exit.
func RunErr(ctx context.Context, name string, fn func(context.Context) error) (err error) {
	name = label(name)
	defer func() {
		if r := recover(); r != nil {
			report(name, r)
			err = fmt.Errorf("%s: %w: %v", name, ErrPanicked, r)
		}
	}()
	err = fn(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Warn("%s exited: %v", name, err)
	}
	return err
}

// GoErr runs fn in a new goroutine under RunErr. The returned channel
// receives fn's result once and is then closed.
func GoErr(ctx context.Context, name string, fn func(context.Context) error) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- RunErr(ctx, name, fn)
	}()
	return done
}
