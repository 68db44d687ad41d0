package utils

// SeenSet remembers keys and counts how often a key was offered again.
// It is not safe for concurrent use.
type SeenSet struct {
	items  map[string]struct{}
	hits   int
	misses int
}

func NewSeenSet() *SeenSet {
	return &SeenSet{
		items:  make(map[string]struct{}),
		hits:   0,
		misses: 0,
	}
}

// Add records key and reports whether it was seen for the first time.
func (s *SeenSet) Add(key string) bool {
	if _, exists := s.items[key]; exists {
		s.hits += 1
		return false
	}

	s.misses += 1
	s.items[key] = struct{}{}
	return true
}

func (s *SeenSet) Size() int {
	return len(s.items)
}

func (s *SeenSet) HitRate() float64 {
	if s.hits+s.misses > 0 {
		return float64(s.hits) / float64(s.hits+s.misses)
	} else {
		return 0.0
	}
}
