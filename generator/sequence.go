package generator

// Sequence is a stateful generator producing start, start+step, ...
// It restarts from start on every run.
type Sequence struct {
	start int64
	step  int64
	next  int64
}

// NewSequence creates a Sequence.
func NewSequence(start, step int64) *Sequence {
	return &Sequence{start: start, step: step, next: start}
}

func (s *Sequence) Generate(*Random) (any, error) {
	v := s.next
	s.next += s.step

	return v, nil
}

func (s *Sequence) Reset() {
	s.next = s.start
}
