package breeds

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

// MemoryStore keeps breed profiles in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]models.BreedProfile
}

// NewMemoryStore creates a store holding the given profiles.
func NewMemoryStore(profiles []models.BreedProfile) *MemoryStore {
	s := &MemoryStore{profiles: make(map[string]models.BreedProfile, len(profiles))}
	for _, p := range profiles {
		s.profiles[p.Key] = p
	}
	return s
}

// List returns every profile ordered by name.
func (s *MemoryStore) List(_ context.Context) ([]models.BreedProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BreedProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].Key < out[j].Key
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Get returns the profile stored under key.
func (s *MemoryStore) Get(_ context.Context, key string) (models.BreedProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[key]
	if !ok {
		return models.BreedProfile{}, fmt.Errorf("%w: %s", ErrBreedNotFound, key)
	}
	return p, nil
}

// Upsert inserts or replaces a profile.
func (s *MemoryStore) Upsert(_ context.Context, profile models.BreedProfile) error {
	if profile.Key == "" {
		return fmt.Errorf("breed_key must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.Key] = profile
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
