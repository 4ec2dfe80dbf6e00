package service

import (
	"context"

	"ironlady-ai-be/internal/dto"
	"ironlady-ai-be/internal/pkg/logger"
	"ironlady-ai-be/internal/repository/contract"
	"ironlady-ai-be/pkg/rag"
	"ironlady-ai-be/pkg/store"
)

// AskEngine is the pipeline contract the chat service drives. Satisfied by
// *rag.Engine.
type AskEngine interface {
	Ask(ctx context.Context, question string, turns []store.ConversationTurn) (string, []store.ConversationTurn)
	AskStream(ctx context.Context, question string, turns []store.ConversationTurn) <-chan rag.StreamEvent
}

type IChatService interface {
	Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	AskStream(ctx context.Context, req *dto.ChatRequest) (<-chan rag.StreamEvent, func(updated []store.ConversationTurn))
}

type chatService struct {
	engine       AskEngine
	sessionStore contract.SessionStore
	log          logger.ILogger
}

func NewChatService(engine AskEngine, sessionStore contract.SessionStore, log logger.ILogger) IChatService {
	return &chatService{
		engine:       engine,
		sessionStore: sessionStore,
		log:          log,
	}
}

// resolveHistory prefers history supplied in the request; when absent it
// falls back to the server-side session store.
func (s *chatService) resolveHistory(ctx context.Context, req *dto.ChatRequest) []store.ConversationTurn {
	if len(req.ConversationHistory) > 0 {
		return dto.TurnsFromDTO(req.ConversationHistory)
	}
	if req.SessionId == "" {
		return nil
	}

	session, err := s.sessionStore.Get(ctx, req.SessionId)
	if err != nil {
		s.log.Warn("chat", "failed to load session history", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
		return nil
	}
	if session == nil {
		return nil
	}
	return session.History
}

func (s *chatService) persistHistory(ctx context.Context, sessionID string, turns []store.ConversationTurn) {
	if sessionID == "" {
		return
	}
	err := s.sessionStore.Save(ctx, &store.Session{
		ID:      sessionID,
		History: turns,
	})
	if err != nil {
		s.log.Warn("chat", "failed to persist session history", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}

func (s *chatService) Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	turns := s.resolveHistory(ctx, req)

	answer, updated := s.engine.Ask(ctx, req.Question, turns)
	s.persistHistory(ctx, req.SessionId, updated)

	s.log.Info("chat", "question answered", map[string]interface{}{
		"session_id":     req.SessionId,
		"history_length": len(updated),
	})

	return &dto.ChatResponse{
		Answer:         answer,
		SessionId:      req.SessionId,
		UpdatedHistory: dto.TurnsToDTO(updated),
	}, nil
}

// AskStream starts the streaming pipeline. The returned commit function
// must be called with the final history once the terminal event arrives;
// it persists the session server-side.
func (s *chatService) AskStream(ctx context.Context, req *dto.ChatRequest) (<-chan rag.StreamEvent, func(updated []store.ConversationTurn)) {
	turns := s.resolveHistory(ctx, req)
	events := s.engine.AskStream(ctx, req.Question, turns)

	sessionID := req.SessionId
	commit := func(updated []store.ConversationTurn) {
		s.persistHistory(ctx, sessionID, updated)
	}
	return events, commit
}
