package histfsm

// stack is a LIFO of state IDs, bottom first
type stack struct {
	items []StateID
}

func (s *stack) push(id StateID) {
	s.items = append(s.items, id)
}

func (s *stack) pop() (StateID, bool) {
	n := len(s.items)
	if n == 0 {
		return "", false
	}
	id := s.items[n-1]
	s.items = s.items[:n-1]
	return id, true
}

func (s *stack) peek() (StateID, bool) {
	n := len(s.items)
	if n == 0 {
		return "", false
	}
	return s.items[n-1], true
}

func (s *stack) isEmpty() bool {
	return len(s.items) == 0
}

func (s *stack) len() int {
	return len(s.items)
}

func (s *stack) clear() {
	s.items = nil
}

// snapshot returns a copy of the entries, oldest first
func (s *stack) snapshot() []StateID {
	res := make([]StateID, len(s.items))
	copy(res, s.items)
	return res
}
