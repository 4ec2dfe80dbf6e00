package contract

import (
	"context"

	"ironlady-ai-be/pkg/store"
)

// SessionStore keeps server-side conversation history per session id. The
// answer pipeline itself is stateless; this store belongs to the transport
// layer.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*store.Session, error)
	Save(ctx context.Context, session *store.Session) error
	Delete(ctx context.Context, sessionID string) error
}
