package field

import (
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/statemachine"
)

// Lifecycle states.
const (
	StatePristine  = statemachine.StringState("pristine")
	StatePrefilled = statemachine.StringState("prefilled")
	StateDirty     = statemachine.StringState("dirty")
	StateValid     = statemachine.StringState("valid")
	StateInvalid   = statemachine.StringState("invalid")
)

// Lifecycle events.
const (
	EventPrefill = statemachine.StringEvent("prefill")
	EventInput   = statemachine.StringEvent("input")
	EventAccept  = statemachine.StringEvent("accept")
	EventReject  = statemachine.StringEvent("reject")
	EventReset   = statemachine.StringEvent("reset")
	EventClear   = statemachine.StringEvent("clear")
)

var allStates = []statemachine.State{StatePristine, StatePrefilled, StateDirty, StateValid, StateInvalid}

// withValue passes when the event carries a non-nil value.
func withValue(_ statemachine.State, _ statemachine.Event, data any) bool {
	return data != nil
}

func withoutValue(_ statemachine.State, _ statemachine.Event, data any) bool {
	return data == nil
}

// newLifecycle builds the field state machine. Reset and clear branch on
// their data: reset receives the original value, clear whether the field
// is required. restore runs before every reset lands.
func newLifecycle(log *slog.Logger, restore statemachine.Action) *statemachine.SimpleStateMachine {
	required := func(_ statemachine.State, _ statemachine.Event, data any) bool {
		b, _ := data.(bool)
		return b
	}
	return statemachine.MustNew(StatePristine,
		statemachine.WithTransition(StatePristine, StatePrefilled, EventPrefill, statemachine.WithGuard(withValue)),
		statemachine.WithTransition(StatePrefilled, StatePristine, EventPrefill, statemachine.WithGuard(withoutValue)),

		statemachine.WithTransitions([]statemachine.State{StatePristine, StatePrefilled, StateValid, StateInvalid}, StateDirty, EventInput),
		statemachine.WithTransition(StateDirty, StateValid, EventAccept),
		statemachine.WithTransition(StateDirty, StateInvalid, EventReject),

		statemachine.WithTransitions(allStates, StatePrefilled, EventReset, statemachine.WithGuard(withValue), statemachine.WithAction(restore)),
		statemachine.WithTransitions(allStates, StatePristine, EventReset, statemachine.WithAction(restore)),

		statemachine.WithTransitions(allStates, StateInvalid, EventClear, statemachine.WithGuard(required)),
		statemachine.WithTransitions(allStates, StateValid, EventClear),

		statemachine.WithObserver(func(from, to statemachine.State, e statemachine.Event) {
			log.Debug("field transition", logger.Transition(from.Name(), to.Name(), e.Name()))
		}),
	)
}
