package safego

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRun_NoPanic(t *testing.T) {
	var called bool
	Run("test", func() {
		called = true
	})
	if !called {
		t.Error("function was not called")
	}
}

func TestRun_CallsPanicHandler(t *testing.T) {
	var (
		mu            sync.Mutex
		handlerName   string
		handlerValue  any
		handlerCalled bool
	)

	SetPanicHandler(func(name string, recovered any, stack []byte) {
		mu.Lock()
		handlerCalled = true
		handlerName = name
		handlerValue = recovered
		mu.Unlock()
	})
	defer SetPanicHandler(nil)

	Run("config-watcher", func() {
		panic("oops")
	})

	mu.Lock()
	defer mu.Unlock()

	if !handlerCalled {
		t.Fatal("panic handler was not called")
	}
	if handlerName != "config-watcher" {
		t.Errorf("expected name 'config-watcher', got %q", handlerName)
	}
	if handlerValue != "oops" {
		t.Errorf("expected recovered value 'oops', got %v", handlerValue)
	}
}

func TestRun_PanicHandlerPanicIsRecovered(t *testing.T) {
	SetPanicHandler(func(name string, recovered any, stack []byte) {
		panic("handler panic")
	})
	defer SetPanicHandler(nil)

	Run("test", func() {
		panic("original panic")
	})
}

func TestRun_EmptyName(t *testing.T) {
	var got string
	SetPanicHandler(func(name string, recovered any, stack []byte) { got = name })
	defer SetPanicHandler(nil)

	Run("", func() { panic("test") })

	if got != "goroutine" {
		t.Errorf("expected default name 'goroutine', got %q", got)
	}
}

func TestGo_RunsInGoroutine(t *testing.T) {
	var called int32
	done := make(chan struct{})
	Go("test", func() {
		atomic.StoreInt32(&called, 1)
		close(done)
	})

	select {
	case <-done:
		if atomic.LoadInt32(&called) != 1 {
			t.Error("function was not called")
		}
	case <-time.After(time.Second):
		t.Error("timed out waiting for goroutine")
	}
}

func TestRunErr_ReturnsError(t *testing.T) {
	want := errors.New("watch failed")
	err := RunErr(context.Background(), "watch", func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestRunErr_ConvertsPanic(t *testing.T) {
	err := RunErr(context.Background(), "watch", func(context.Context) error {
		panic("bad state")
	})
	if !errors.Is(err, ErrPanicked) {
		t.Fatalf("expected ErrPanicked, got %v", err)
	}
}

func TestGoErr_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := GoErr(ctx, "loop", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for GoErr")
	}
	if _, ok := <-done; ok {
		t.Fatal("expected channel to be closed after the result")
	}
}
