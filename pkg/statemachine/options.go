package statemachine

import "fmt"

// Option configures a state machine during construction.
type Option func(*SimpleStateMachine) error

// TransitionOption configures a single transition with guards and actions.
type TransitionOption func(*Transition)

// New creates a new state machine with the given initial state and options.
func New(initialState State, opts ...Option) (*SimpleStateMachine, error) {
	if initialState == nil {
		return nil, ErrNilInitialState
	}

	sm := newSimpleStateMachine(initialState)
	for _, opt := range opts {
		if err := opt(sm); err != nil {
			return nil, err
		}
	}
	return sm, nil
}

// MustNew is like New but panics if any option fails to apply.
// Intended for transition tables that are fixed at compile time.
func MustNew(initialState State, opts ...Option) *SimpleStateMachine {
	sm, err := New(initialState, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return sm
}

// WithTransition adds a single transition to the state machine.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(sm *SimpleStateMachine) error {
		t := Transition{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		if err := sm.AddTransition(t); err != nil {
			return fmt.Errorf("%s -> %s on %s: %w", nameOf(from), nameOf(to), nameOf(event), err)
		}
		return nil
	}
}

// WithTransitions adds the same event from several source states to one target.
func WithTransitions(from []State, to State, event Event, opts ...TransitionOption) Option {
	return func(sm *SimpleStateMachine) error {
		for _, f := range from {
			if err := WithTransition(f, to, event, opts...)(sm); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithObserver registers a callback run after each completed transition.
// Observers run in registration order and cannot veto the change.
func WithObserver(observer Observer) Option {
	return func(sm *SimpleStateMachine) error {
		if observer == nil {
			return ErrNilObserver
		}
		sm.observers = append(sm.observers, observer)
		return nil
	}
}

// WithGuard adds guards to a transition. Nil guards are skipped.
func WithGuard(guards ...Guard) TransitionOption {
	return func(t *Transition) {
		for _, guard := range guards {
			if guard != nil {
				t.Guards = append(t.Guards, guard)
			}
		}
	}
}

// WithAction adds actions to a transition. Nil actions are skipped.
func WithAction(actions ...Action) TransitionOption {
	return func(t *Transition) {
		for _, action := range actions {
			if action != nil {
				t.Actions = append(t.Actions, action)
			}
		}
	}
}

func nameOf(v interface{ Name() string }) string {
	if v == nil {
		return "<nil>"
	}
	return v.Name()
}
