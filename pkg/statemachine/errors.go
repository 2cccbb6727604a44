package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid transition: from, to and event are required")
	ErrInvalidEvent      = errors.New("invalid event: event is required")
	ErrNilInitialState   = errors.New("initial state is required")
	ErrNilObserver       = errors.New("observer is required")

	// Causes carried by FireError.
	ErrNoTransition = errors.New("no transition available")
	ErrRejected     = errors.New("rejected by guards")
)

// FireError reports why Fire could not move the machine. Err is
// ErrNoTransition when nothing is registered for the pair and ErrRejected
// when transitions exist but none of them passed its guards.
type FireError struct {
	State string
	Event string
	Err   error
}

func (e *FireError) Error() string {
	return fmt.Sprintf("event %q in state %q: %v", e.Event, e.State, e.Err)
}

func (e *FireError) Unwrap() error { return e.Err }

func fireError(state State, event Event, cause error) *FireError {
	return &FireError{State: state.Name(), Event: event.Name(), Err: cause}
}
