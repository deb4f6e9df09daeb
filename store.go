package celebrate

// Store is the particle collection shared by the emitter and the simulation.
// It starts empty and is cleared whenever the loop goes idle. All access
// happens on the update goroutine.
type Store struct {
	items []Particle
}

// defaultStoreCap covers one full celebration without regrowing.
const defaultStoreCap = 1024

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{items: make([]Particle, 0, defaultStoreCap)}
}

// Len returns the number of live particles.
func (s *Store) Len() int {
	return len(s.items)
}

// Add appends a particle.
func (s *Store) Add(p Particle) {
	s.items = append(s.items, p)
}

// At returns a copy of the i-th particle.
func (s *Store) At(i int) Particle {
	return s.items[i]
}

// Particles returns the live particles. The returned slice MUST NOT be
// mutated or retained across frames.
func (s *Store) Particles() []Particle {
	return s.items
}

// Count returns the number of live particles of the given kind.
func (s *Store) Count(k Kind) int {
	n := 0
	for i := range s.items {
		if s.items[i].Kind == k {
			n++
		}
	}
	return n
}

// Clear drops every particle and keeps the backing array.
func (s *Store) Clear() {
	s.items = s.items[:0]
}
