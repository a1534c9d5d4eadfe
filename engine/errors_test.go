package engine

import (
	"errors"
	"testing"
)

func TestContextInitError(t *testing.T) {

	cause := errors.New("no available video device")
	var err error = &ContextInitError{Step: "sdl init", Err: cause}

	if err.Error() != "failed to sdl init: no available video device" {
		t.Errorf("unexpected message %q", err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("expected the cause to be unwrappable")
	}

	var initErr *ContextInitError
	if !errors.As(err, &initErr) || initErr.Step != "sdl init" {
		t.Error("expected errors.As to find the ContextInitError")
	}
}

func TestWindowRequestClose(t *testing.T) {

	w := &Window{}
	if w.IsCloseRequested() {
		t.Fatal("new window should not be closing")
	}

	w.RequestClose()
	if !w.IsCloseRequested() {
		t.Error("expected close to be requested")
	}
}
