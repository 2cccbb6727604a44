package statemachine

// State is a named node of the machine. States compare by name.
type State interface {
	Name() string
}

// Event is a named trigger. Events compare by name.
type Event interface {
	Name() string
}

// Guard reports whether a transition may be taken for the data given to Fire.
type Guard func(from State, event Event, data any) bool

// Action runs once the guards have passed and before the state changes.
// A non-nil error leaves the machine where it was.
type Action func(from, to State, event Event, data any) error

// Observer sees every completed transition.
type Observer func(from, to State, event Event)

// Transition moves the machine From one state To another when Event fires.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// allows reports whether every guard passes. Nil guards pass.
func (t Transition) allows(data any) bool {
	for _, guard := range t.Guards {
		if guard != nil && !guard(t.From, t.Event, data) {
			return false
		}
	}
	return true
}

// Machine is the behaviour fields rely on. SimpleStateMachine implements it.
type Machine interface {
	Current() State
	Is(state State) bool
	AddTransition(t Transition) error
	Fire(event Event, data any) error
	CanFire(event Event, data any) bool
	Events() []Event
}

// StringState is a State named by its own value.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is an Event named by its own value.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }
