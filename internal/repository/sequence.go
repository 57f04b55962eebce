package repository

// sequence issues auto-incrementing integer IDs starting at 1. Repositories
// that own identified records embed one by value.
type sequence struct {
	next int
}

func newSequence() sequence {
	return sequence{next: 1}
}

// NextID returns the next unused ID and advances the counter.
func (s *sequence) NextID() int {
	id := s.next
	s.next++
	return id
}

// Reset restarts the counter at 1.
func (s *sequence) Reset() {
	s.next = 1
}
