package mines

/*
indexSet is a membership set over flat board indices. Removal is O(1)
and the size is tracked, so emptiness (the win condition) is O(1) too.
*/
type indexSet struct {
	member []bool
	size   int
}

func newIndexSet(n int) *indexSet {
	return &indexSet{member: make([]bool, n)}
}

func (s *indexSet) add(i int) {
	if !s.member[i] {
		s.member[i] = true
		s.size++
	}
}

func (s *indexSet) remove(i int) bool {
	if !s.member[i] {
		return false
	}
	s.member[i] = false
	s.size--
	return true
}

func (s *indexSet) has(i int) bool {
	return s.member[i]
}

func (s *indexSet) len() int {
	return s.size
}
