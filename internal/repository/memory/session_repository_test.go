package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ironlady-ai-be/pkg/store"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	ctx := context.Background()

	session := &store.Session{
		ID: "session-1",
		History: []store.ConversationTurn{
			{Question: "What is 4T?", Answer: "Target, Time, Team, Theme."},
		},
	}
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, "session-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.History, got.History)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSessionRepositoryMissReturnsNil(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	got, err := repo.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &store.Session{ID: "session-1"}))
	require.NoError(t, repo.Delete(ctx, "session-1"))

	got, err := repo.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
