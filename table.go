package histfsm

// Table is a read-only, ordered mapping of state IDs to their definitions.
// A Table never changes once built, so machines may share one.
type Table struct {
	order  []StateID
	states map[StateID]*State
}

// Lookup returns the definition for id. The State must not be modified.
func (t *Table) Lookup(id StateID) (*State, bool) {
	s, ok := t.states[id]
	return s, ok
}

// Has reports whether id is a key of the table
func (t *Table) Has(id StateID) bool {
	_, ok := t.states[id]
	return ok
}

// Len returns the number of states
func (t *Table) Len() int {
	return len(t.order)
}

// IDs returns every state ID in insertion order
func (t *Table) IDs() []StateID {
	res := make([]StateID, len(t.order))
	copy(res, t.order)
	return res
}

// Handling returns, in insertion order, the states declaring a transition for event
func (t *Table) Handling(event EventID) []StateID {
	res := make([]StateID, 0, len(t.order))
	for _, id := range t.order {
		if t.states[id].Handles(event) {
			res = append(res, id)
		}
	}
	return res
}

// Resolve returns the target of event from the state from
func (t *Table) Resolve(from StateID, event EventID) (StateID, bool) {
	s, ok := t.states[from]
	if !ok {
		return "", false
	}
	return s.Target(event)
}

// Transitions lists every declared transition, ordered by state then event
func (t *Table) Transitions() []Transition {
	var res []Transition
	for _, id := range t.order {
		s := t.states[id]
		for _, ev := range s.events {
			res = append(res, Transition{From: id, Event: ev, To: s.transitions[ev]})
		}
	}
	return res
}

func (t *Table) clone() *Table {
	res := &Table{
		order:  make([]StateID, len(t.order)),
		states: make(map[StateID]*State, len(t.states)),
	}
	copy(res.order, t.order)
	for id, s := range t.states {
		c := newState(id)
		for _, ev := range s.events {
			c.addTransition(ev, s.transitions[ev])
		}
		res.states[id] = c
	}
	return res
}
