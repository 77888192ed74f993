package histfsm

import (
	"fmt"
	"log/slog"
)

// Machine is the runtime FSM instance. It performs no locking: callers
// sharing one Machine between goroutines must serialize access themselves.
type Machine struct {
	table      *Table
	current    StateID
	resetState StateID

	undo stack
	redo stack

	logger *slog.Logger
}

// MachineOption is a functional option for configuring a Machine
type MachineOption func(*Machine)

// WithLogger sets the logger for the machine
func WithLogger(logger *slog.Logger) MachineOption {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithResetState sets the state Reset moves to, in place of ResetState
func WithResetState(id StateID) MachineOption {
	return func(m *Machine) {
		m.resetState = id
	}
}

// New creates a Machine positioned at the definition's initial state.
// Neither the initial state nor any transition target is checked here.
func New(def *Definition, opts ...MachineOption) (*Machine, error) {
	if def == nil {
		return nil, ErrNoConfiguration
	}

	m := &Machine{
		table:      def.Table(),
		current:    def.initial,
		resetState: ResetState,
		logger:     Logger,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// CurrentState returns the active state
func (m *Machine) CurrentState() StateID {
	return m.current
}

// Table returns the state table the machine was built with
func (m *Machine) Table() *Table {
	return m.table
}

// ChangeState moves directly to target. The previous state is recorded for
// Undo and any pending redo history is discarded.
func (m *Machine) ChangeState(target StateID) error {
	return m.changeState(target, "")
}

// Trigger takes the transition declared for event on the current state
func (m *Machine) Trigger(event EventID) error {
	target, ok := m.table.Resolve(m.current, event)
	if !ok {
		return fmt.Errorf("%w: no transition for %q from %q",
			ErrInvalidState, event, m.current)
	}
	return m.changeState(target, event)
}

func (m *Machine) changeState(target StateID, event EventID) error {
	if !m.table.Has(target) {
		return fmt.Errorf("%w: %q", ErrInvalidState, target)
	}

	from := m.current
	m.undo.push(from)
	m.redo.clear()
	m.current = target

	m.logger.Debug("state changed", "from", from, "to", target, "event", event)
	return nil
}

// Reset moves to the reset state without validating it or touching history
func (m *Machine) Reset() {
	m.logger.Debug("reset", "from", m.current, "to", m.resetState)
	m.current = m.resetState
}

// States returns every state in the table, in declaration order
func (m *Machine) States() []StateID {
	return m.table.IDs()
}

// StatesFor returns the states declaring a transition for event, in
// declaration order. An empty event returns every state.
func (m *Machine) StatesFor(event EventID) []StateID {
	if event == "" {
		return m.table.IDs()
	}
	return m.table.Handling(event)
}

// Undo returns to the previous state. It returns false if there is no
// history to undo.
func (m *Machine) Undo() bool {
	prev, ok := m.undo.pop()
	if !ok {
		return false
	}
	m.redo.push(m.current)
	m.logger.Debug("undo", "from", m.current, "to", prev)
	m.current = prev
	return true
}

// Redo reapplies the most recently undone state. It returns false if
// there is nothing to redo.
func (m *Machine) Redo() bool {
	next, ok := m.redo.pop()
	if !ok {
		return false
	}
	m.undo.push(m.current)
	m.logger.Debug("redo", "from", m.current, "to", next)
	m.current = next
	return true
}

// CanUndo reports whether Undo would succeed
func (m *Machine) CanUndo() bool {
	return !m.undo.isEmpty()
}

// CanRedo reports whether Redo would succeed
func (m *Machine) CanRedo() bool {
	return !m.redo.isEmpty()
}

// UndoHistory returns the undo stack, oldest first
func (m *Machine) UndoHistory() []StateID {
	return m.undo.snapshot()
}

// RedoHistory returns the redo stack, oldest first
func (m *Machine) RedoHistory() []StateID {
	return m.redo.snapshot()
}

// ClearHistory discards both undo and redo history
func (m *Machine) ClearHistory() {
	m.logger.Debug("history cleared", "undo", m.undo.len(), "redo", m.redo.len())
	m.undo.clear()
	m.redo.clear()
}
