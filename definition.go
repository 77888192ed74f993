package histfsm

// Definition holds the FSM structure before building a Machine
type Definition struct {
	table   *Table
	initial StateID

	// snapshot handed to machines; dropped whenever the definition changes
	frozen *Table
}

// NewDefinition creates a new FSM definition builder
func NewDefinition() *Definition {
	return &Definition{
		table: &Table{states: make(map[StateID]*State)},
	}
}

// State adds a state to the definition. Declaring an existing state again
// applies opts to it without changing its position.
func (d *Definition) State(id StateID, opts ...StateOption) *Definition {
	s := d.declare(id)
	for _, opt := range opts {
		opt(s)
	}
	d.frozen = nil
	return d
}

// Transition adds a transition rule, declaring from if it is not yet known.
// The target is not checked until the transition is taken.
func (d *Definition) Transition(from StateID, event EventID, to StateID) *Definition {
	d.declare(from).addTransition(event, to)
	d.frozen = nil
	return d
}

// Initial sets the initial state. It is not checked against the table.
func (d *Definition) Initial(id StateID) *Definition {
	d.initial = id
	return d
}

// InitialState returns the configured initial state
func (d *Definition) InitialState() StateID {
	return d.initial
}

// Table returns an immutable snapshot of the declared states. Repeated
// calls without intervening changes return the same Table.
func (d *Definition) Table() *Table {
	if d.frozen == nil {
		d.ensureTable()
		d.frozen = d.table.clone()
	}
	return d.frozen
}

// Transitions lists every declared transition
func (d *Definition) Transitions() []Transition {
	d.ensureTable()
	return d.table.Transitions()
}

// Build creates a Machine from the definition
func (d *Definition) Build(opts ...MachineOption) (*Machine, error) {
	return New(d, opts...)
}

func (d *Definition) declare(id StateID) *State {
	d.ensureTable()
	if s, ok := d.table.states[id]; ok {
		return s
	}
	s := newState(id)
	d.table.states[id] = s
	d.table.order = append(d.table.order, id)
	return s
}

// ensureTable makes the zero Definition usable
func (d *Definition) ensureTable() {
	if d.table == nil {
		d.table = &Table{states: make(map[StateID]*State)}
	}
}
