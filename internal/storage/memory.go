package storage

import (
	"context"
	"sync"

	"github.com/yourname/calorietracker/internal"
)

// userState is everything one user owns. Shared by memory and file backends.
type userState struct {
	Seeded   bool                  `json:"seeded"`
	Entries  []internal.FoodEntry  `json:"entries"`
	Profile  *internal.ProfileData `json:"profile,omitempty"`
	Settings *internal.Settings    `json:"settings,omitempty"`
	Account  *internal.AccountInfo `json:"account,omitempty"`
	User     *internal.User        `json:"user,omitempty"`
}

// MemoryStorage keeps state for the life of the process only.
type MemoryStorage struct {
	mu    sync.RWMutex
	users map[string]*userState
	// onChange runs after every mutation with mu still held for writing.
	onChange func(changeKind)
}

type changeKind int

const (
	changeEntries changeKind = iota
	changePrefs
)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{users: make(map[string]*userState)}
}

func (s *MemoryStorage) state(userID string) *userState {
	st, ok := s.users[userID]
	if !ok {
		st = &userState{}
		s.users[userID] = st
	}
	return st
}

func (s *MemoryStorage) changed(kind changeKind) {
	if s.onChange != nil {
		s.onChange(kind)
	}
}

func (s *MemoryStorage) Close() error { return nil }

// --- FoodEntryRepository ---
func (s *MemoryStorage) SeedFoodEntries(ctx context.Context, userID string, entries []internal.FoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(userID)
	if st.Seeded {
		return nil
	}
	st.Seeded = true
	seeded := make([]internal.FoodEntry, 0, len(entries)+len(st.Entries))
	for _, e := range entries {
		e.UserID = userID
		seeded = append(seeded, e)
	}
	st.Entries = append(seeded, st.Entries...)
	s.changed(changeEntries)
	return nil
}

func (s *MemoryStorage) SaveFoodEntry(ctx context.Context, entry *internal.FoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state(entry.UserID)
	for i, existing := range st.Entries {
		if existing.ID == entry.ID {
			st.Entries[i] = *entry
			s.changed(changeEntries)
			return nil
		}
	}
	st.Entries = append(st.Entries, *entry)
	s.changed(changeEntries)
	return nil
}

func (s *MemoryStorage) ListFoodEntries(ctx context.Context, userID string) ([]internal.FoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.users[userID]
	if !ok {
		return []internal.FoodEntry{}, nil
	}
	out := make([]internal.FoodEntry, len(st.Entries))
	copy(out, st.Entries)
	return out, nil
}

func (s *MemoryStorage) DeleteFoodEntry(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	for i, e := range st.Entries {
		if e.ID == id {
			st.Entries = append(st.Entries[:i], st.Entries[i+1:]...)
			s.changed(changeEntries)
			return nil
		}
	}
	return ErrNotFound
}

// --- ProfileRepository ---
func (s *MemoryStorage) SaveProfile(ctx context.Context, userID string, p *internal.ProfileData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.state(userID).Profile = &cp
	s.changed(changePrefs)
	return nil
}

func (s *MemoryStorage) GetProfile(ctx context.Context, userID string) (*internal.ProfileData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.users[userID]
	if !ok || st.Profile == nil {
		return nil, ErrNotFound
	}
	cp := *st.Profile
	return &cp, nil
}

// --- SettingsRepository ---
func (s *MemoryStorage) SaveSettings(ctx context.Context, userID string, v *internal.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *v
	s.state(userID).Settings = &cp
	s.changed(changePrefs)
	return nil
}

func (s *MemoryStorage) GetSettings(ctx context.Context, userID string) (*internal.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.users[userID]
	if !ok || st.Settings == nil {
		return nil, ErrNotFound
	}
	cp := *st.Settings
	return &cp, nil
}

func (s *MemoryStorage) SaveAccount(ctx context.Context, userID string, a *internal.AccountInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	s.state(userID).Account = &cp
	s.changed(changePrefs)
	return nil
}

func (s *MemoryStorage) GetAccount(ctx context.Context, userID string) (*internal.AccountInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.users[userID]
	if !ok || st.Account == nil {
		return nil, ErrNotFound
	}
	cp := *st.Account
	return &cp, nil
}

// --- UserRepository ---
func (s *MemoryStorage) SaveUser(ctx context.Context, u *internal.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.state(u.ID).User = &cp
	s.changed(changePrefs)
	return nil
}

func (s *MemoryStorage) GetUserByToken(ctx context.Context, token string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.users {
		if st.User != nil && st.User.Token == token {
			cp := *st.User
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// --- Compile-time assertions ---
var _ Repositories = (*MemoryStorage)(nil)
