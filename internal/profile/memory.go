package profile

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store. It backs tests and any run that
// doesn't need persistence, and doubles as the reference implementation
// of the merge semantics.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
	subs     map[string]map[int]func(Profile)
	nextSub  int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*Profile),
		subs:     make(map[string]map[int]func(Profile)),
	}
}

// Seed installs a profile directly, bypassing merge logic. Test helper.
func (s *MemoryStore) Seed(p *Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID] = p.Clone()
}

func (s *MemoryStore) Read(_ context.Context, userID string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return p.Clone(), nil
}

func (s *MemoryStore) Write(_ context.Context, userID string, patch Patch) error {
	s.mu.Lock()

	p, ok := s.profiles[userID]
	if !ok {
		p = &Profile{
			UserID:    userID,
			Skills:    make(map[string]int),
			CreatedAt: time.Now().UTC(),
		}
		s.profiles[userID] = p
	}

	applyPatch(p, patch)

	snapshot := p.Clone()
	var fns []func(Profile)
	for _, fn := range s.subs[userID] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	// Notify outside the lock; subscribers may call back into the store.
	for _, fn := range fns {
		fn(*snapshot)
	}
	return nil
}

func (s *MemoryStore) Subscribe(userID string, fn func(Profile)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs[userID] == nil {
		s.subs[userID] = make(map[int]func(Profile))
	}
	id := s.nextSub
	s.nextSub++
	s.subs[userID][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[userID], id)
	}
}

// applyPatch merges a Patch into a Profile in place.
func applyPatch(p *Profile, patch Patch) {
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Username != nil {
		p.Username = *patch.Username
	}
	if patch.Level != nil {
		p.Level = *patch.Level
	}
	if patch.XP != nil {
		p.XP = *patch.XP
	}
	if patch.Streak != nil {
		p.Streak = *patch.Streak
	}
	if len(patch.Skills) > 0 {
		if p.Skills == nil {
			p.Skills = make(map[string]int)
		}
		for k, v := range patch.Skills {
			p.Skills[k] = v
		}
	}
	if patch.LastTestDate != nil {
		t := *patch.LastTestDate
		p.LastTestDate = &t
	}
}
