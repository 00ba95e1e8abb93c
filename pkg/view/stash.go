package view

// stash buffers messages that arrive before the view can answer them.
// Append-only until drained; drained exactly once, at the transition to live.
type stash struct {
	items []message
}

func (s *stash) append(m message) {
	s.items = append(s.items, m)
}

// drain returns the buffered messages oldest first and empties the stash.
func (s *stash) drain() []message {
	items := s.items
	s.items = nil
	return items
}

func (s *stash) len() int { return len(s.items) }
