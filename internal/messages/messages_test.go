package messages

import (
	"errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := Error{Err: errors.New("boom"), Context: "saving board"}
	if err.Error() != "saving board: boom" {
		t.Fatalf("unexpected formatted error: %q", err.Error())
	}

	err = Error{Err: errors.New("boom")}
	if err.Error() != "boom" {
		t.Fatalf("unexpected formatted error without context: %q", err.Error())
	}
}

func TestErrorUnwrap(t *testing.T) {
	base := errors.New("disk full")
	var err error = Error{Err: base, Context: "save"}
	if !errors.Is(err, base) {
		t.Fatal("expected errors.Is to see the wrapped error")
	}
}
