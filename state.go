package histfsm

// State defines a state in the machine and its outgoing transitions
type State struct {
	ID StateID

	transitions map[EventID]StateID
	events      []EventID // declaration order of transitions keys
}

// StateOption is a functional option for configuring a State
type StateOption func(*State)

// WithTransition adds an outgoing transition taken when event fires.
// A transition on the empty event can be triggered but never filtered on:
// StatesFor("") lists every state.
func WithTransition(event EventID, to StateID) StateOption {
	return func(s *State) {
		s.addTransition(event, to)
	}
}

func newState(id StateID) *State {
	return &State{
		ID:          id,
		transitions: make(map[EventID]StateID),
	}
}

func (s *State) addTransition(event EventID, to StateID) {
	if _, ok := s.transitions[event]; !ok {
		s.events = append(s.events, event)
	}
	s.transitions[event] = to
}

// Target returns the state event leads to, if the state declares it
func (s *State) Target(event EventID) (StateID, bool) {
	to, ok := s.transitions[event]
	return to, ok
}

// Handles reports whether the state declares a transition for event
func (s *State) Handles(event EventID) bool {
	_, ok := s.transitions[event]
	return ok
}

// Events returns the declared events in declaration order
func (s *State) Events() []EventID {
	res := make([]EventID, len(s.events))
	copy(res, s.events)
	return res
}
