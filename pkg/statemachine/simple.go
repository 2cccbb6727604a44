package statemachine

import (
	"fmt"
)

// SimpleStateMachine is an in-memory state machine owned by a single goroutine.
// Transitions are kept in a nested map for O(1) lookups: [fromState][event][]Transition.
type SimpleStateMachine struct {
	currentState State
	transitions  map[string]map[string][]Transition
	events       []Event // in registration order
	observers    []Observer
}

var _ Machine = (*SimpleStateMachine)(nil)

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		currentState: initialState,
		transitions:  make(map[string]map[string][]Transition),
	}
}

func (sm *SimpleStateMachine) Current() State {
	return sm.currentState
}

// Is reports whether the machine is currently in state.
func (sm *SimpleStateMachine) Is(state State) bool {
	return state != nil && sm.currentState.Name() == state.Name()
}

// AddTransition registers t after any transition already registered for
// the same state and event.
func (sm *SimpleStateMachine) AddTransition(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}

	from, event := t.From.Name(), t.Event.Name()
	if _, ok := sm.transitions[from]; !ok {
		sm.transitions[from] = make(map[string][]Transition)
	}
	if !sm.knows(event) {
		sm.events = append(sm.events, t.Event)
	}
	sm.transitions[from][event] = append(sm.transitions[from][event], t)
	return nil
}

func (sm *SimpleStateMachine) knows(eventName string) bool {
	for _, e := range sm.events {
		if e.Name() == eventName {
			return true
		}
	}
	return false
}

// match returns the first transition whose guards all pass.
// First match wins, so registration order is priority order.
func (sm *SimpleStateMachine) match(event Event, data any) (*Transition, error) {
	candidates := sm.transitions[sm.currentState.Name()][event.Name()]
	if len(candidates) == 0 {
		return nil, fireError(sm.currentState, event, ErrNoTransition)
	}
	for i := range candidates {
		if candidates[i].allows(data) {
			return &candidates[i], nil
		}
	}
	return nil, fireError(sm.currentState, event, ErrRejected)
}

func (sm *SimpleStateMachine) Fire(event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	t, err := sm.match(event, data)
	if err != nil {
		return err
	}

	from := sm.currentState
	for _, action := range t.Actions {
		if action != nil {
			if err := action(from, t.To, event, data); err != nil {
				return fmt.Errorf("action failed: %w", err)
			}
		}
	}

	sm.currentState = t.To
	for _, observe := range sm.observers {
		observe(from, t.To, event)
	}
	return nil
}

func (sm *SimpleStateMachine) CanFire(event Event, data any) bool {
	if event == nil {
		return false
	}
	_, err := sm.match(event, data)
	return err == nil
}

// Events returns the events with at least one transition out of the current
// state, in the order they were first registered. Guards are not evaluated.
func (sm *SimpleStateMachine) Events() []Event {
	available := sm.transitions[sm.currentState.Name()]
	var out []Event
	for _, e := range sm.events {
		if len(available[e.Name()]) > 0 {
			out = append(out, e)
		}
	}
	return out
}
