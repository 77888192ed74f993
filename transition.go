package histfsm

// Transition is a declared (state, event) -> target rule. An empty Event is
// a valid name but cannot be filtered on: StatesFor("") lists every state.
type Transition struct {
	From  StateID // Source state
	Event EventID // Triggering event
	To    StateID // Target state, unchecked until the transition is taken
}
