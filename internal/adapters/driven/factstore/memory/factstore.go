package memory

import (
	"sync"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
	"github.com/sneaxhuh/sentinel/internal/core/ports/driven"
)

// Ensure FactStore implements the interface.
var _ driven.FactStore = (*FactStore)(nil)

// FactStore is an in-memory implementation of driven.FactStore. Values
// keep their insertion order, so seeded facts always come before any
// triple added at runtime.
type FactStore struct {
	mu    sync.RWMutex
	facts map[factKey][]string
}

type factKey struct {
	relation domain.Relation
	subject  string
}

// NewFactStore creates an empty fact store.
func NewFactStore() *FactStore {
	return &FactStore{facts: make(map[factKey][]string)}
}

// NewSeededFactStore creates a fact store pre-loaded with the given
// triples.
func NewSeededFactStore(seed []domain.Fact) *FactStore {
	s := NewFactStore()
	for _, f := range seed {
		s.AddFact(f.Relation, f.Subject, f.Value)
	}
	return s
}

// FactsFor returns all values registered under (relation, subject).
func (s *FactStore) FactsFor(relation domain.Relation, subject string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := s.facts[factKey{relation, subject}]
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// AddFact appends a triple. Duplicate values are ignored.
func (s *FactStore) AddFact(relation domain.Relation, subject, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := factKey{relation, subject}
	for _, v := range s.facts[key] {
		if v == value {
			return
		}
	}
	s.facts[key] = append(s.facts[key], value)
}
