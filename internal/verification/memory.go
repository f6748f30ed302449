package verification

import (
	"sync"
	"time"
)

type entry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore is the in-memory Store used in development and tests.
type MemoryStore struct {
	mu    sync.Mutex
	codes map[string]entry
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		codes: make(map[string]entry),
		now:   time.Now,
	}
}

func (s *MemoryStore) Put(phone, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[phone] = entry{
		code:      code,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Consume(phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.codes[phone]
	if !ok {
		return ErrCodeNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.codes, phone)
		return ErrCodeExpired
	}
	if e.code != code {
		return ErrCodeMismatch
	}

	delete(s.codes, phone)
	return nil
}
