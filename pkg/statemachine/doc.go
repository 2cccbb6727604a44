// Package statemachine implements a small finite state machine used to
// drive field lifecycles.
//
// States and events are anything with a Name; StringState and StringEvent
// cover the common case. A transition is looked up by the current state and
// the fired event. Several transitions may share a state/event pair: they
// are tried in registration order and the first one whose guards all pass
// wins, which gives simple guard-based branching.
//
// # Usage
//
//	const (
//	    Pristine  = statemachine.StringState("pristine")
//	    Prefilled = statemachine.StringState("prefilled")
//	    Prefill   = statemachine.StringEvent("prefill")
//	)
//
//	machine := statemachine.MustNew(Pristine,
//	    statemachine.WithTransition(Pristine, Prefilled, Prefill),
//	    statemachine.WithObserver(func(from, to statemachine.State, e statemachine.Event) {
//	        log.Printf("%s -> %s via %s", from.Name(), to.Name(), e.Name())
//	    }),
//	)
//
//	if err := machine.Fire(Prefill, nil); err != nil {
//	    // ...
//	}
//
// # Guards, Actions and Observers
//
// Guards veto a transition based on the data passed to Fire. Actions run
// after the guards pass and before the state changes; an action error
// aborts the transition. Observers run after the state has changed and are
// the place for logging.
//
// # Error Handling
//
// Fire returns a *FireError that distinguishes a missing transition from a
// guarded one:
//
//	switch {
//	case errors.Is(err, statemachine.ErrNoTransition):
//	    // nothing registered for this state and event
//	case errors.Is(err, statemachine.ErrRejected):
//	    // every candidate was vetoed by a guard
//	}
//
// # Concurrency
//
// A machine is not safe for concurrent use. It belongs to the value whose
// lifecycle it tracks.
package statemachine
