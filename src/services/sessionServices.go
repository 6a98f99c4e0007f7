package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ARQAP/AppArchivo-Backend/src/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultSessionTTL = 30 * time.Minute

type sessionEntry struct {
	result    *models.LayoutResult
	expiresAt time.Time
}

// SessionService keeps computed layouts around long enough to look records up
// and download the result. Nothing is persisted; a new upload always yields a
// new session.
type SessionService struct {
	ttl      time.Duration
	sessions map[string]*sessionEntry
	mutex    sync.RWMutex
	now      func() time.Time
	logger   *zap.Logger
}

// NewSessionService creates a new instance of SessionService. Expired
// sessions are purged every ttl until ctx is done.
func NewSessionService(ctx context.Context, ttl time.Duration, logger *zap.Logger) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SessionService{
		ttl:      ttl,
		sessions: make(map[string]*sessionEntry),
		now:      time.Now,
		logger:   logger,
	}

	go s.cleanup(ctx)

	return s
}

func (s *SessionService) cleanup(ctx context.Context) {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.PurgeExpired(); n > 0 {
				s.logger.Debug("sesiones expiradas eliminadas", zap.Int("count", n))
			}
		}
	}
}

// Save stores result under a fresh id.
func (s *SessionService) Save(result *models.LayoutResult) string {
	id := uuid.NewString()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.sessions[id] = &sessionEntry{
		result:    result,
		expiresAt: s.now().Add(s.ttl),
	}
	return id
}

func (s *SessionService) Get(id string) (*models.LayoutResult, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.sessions[id]
	if !exists || s.now().After(entry.expiresAt) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return entry.result, nil
}

func (s *SessionService) Delete(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.sessions, id)
}

// PurgeExpired removes expired sessions and reports how many were dropped.
func (s *SessionService) PurgeExpired() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	purged := 0
	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, id)
			purged++
		}
	}
	return purged
}
