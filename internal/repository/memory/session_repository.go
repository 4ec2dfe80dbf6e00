package memory

import (
	"context"
	"time"

	"ironlady-ai-be/internal/repository/contract"
	"ironlady-ai-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

var _ contract.SessionStore = &SessionRepository{}

// NewSessionRepository creates an in-process session store. Expired
// sessions are purged every 10 minutes.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*store.Session, error) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), nil
	}
	return nil, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *store.Session) error {
	session.UpdatedAt = time.Now()
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.cache.Delete(sessionID)
	return nil
}
