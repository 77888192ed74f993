package histfsm

import (
	"errors"
	"log/slog"
)

// StateID is a unique identifier for a state
type StateID string

// EventID is a unique identifier for an event type
type EventID string

// ResetState is the state Reset moves to unless WithResetState overrides it.
// It is not required to be part of the state table.
const ResetState StateID = "normal"

var (
	// ErrNoConfiguration is returned when a machine is built without a definition
	ErrNoConfiguration = errors.New("no configuration supplied")
	// ErrInvalidState is returned when a change targets a state missing from the table
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidDefinition is returned when a definition document cannot be decoded
	ErrInvalidDefinition = errors.New("invalid definition")
)

// Logger is the default logger used when none is provided
var Logger = slog.Default()
