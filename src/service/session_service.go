package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gitlab.com/open-soft/go-crypto-dashboard/src/repository"
)

const SessionStorageKey = "sid"

// SessionService hands out the per-profile session id used to correlate
// successive AI queries. The id never expires and is never rotated.
type SessionService struct {
	Storage  repository.LocalStorageInterface
	Generate func() string
	mutex    sync.Mutex
}

// GetOrCreate is safe for concurrent queries: the read and the first write
// happen under one lock, so every caller gets the stored id.
func (s *SessionService) GetOrCreate(ctx context.Context) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sid, found, err := s.Storage.GetItem(ctx, SessionStorageKey)
	if err != nil {
		return "", err
	}

	if found && sid != "" {
		return sid, nil
	}

	sid = s.generate()
	if err := s.Storage.SetItem(ctx, SessionStorageKey, sid); err != nil {
		return "", err
	}

	return sid, nil
}

func (s *SessionService) generate() string {
	if s.Generate != nil {
		return s.Generate()
	}

	return uuid.NewString()
}
