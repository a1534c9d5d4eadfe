package engine

import "fmt"

// ContextInitError is returned when the window, the OpenGL context or the OpenGL function loader fail to initialize
type ContextInitError struct {
	Step string
	Err  error
}

func (e *ContextInitError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Step, e.Err)
}

func (e *ContextInitError) Unwrap() error {
	return e.Err
}
