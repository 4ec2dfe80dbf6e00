package dto

import (
	"time"

	"ironlady-ai-be/pkg/store"
)

type ConversationTurnDTO struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatRequest struct {
	Question string `json:"question" validate:"required"`
	// SessionId selects the server-side history when
	// ConversationHistory is omitted from the request.
	SessionId           string                `json:"session_id"`
	ConversationHistory []ConversationTurnDTO `json:"conversation_history"`
}

type ChatResponse struct {
	Answer         string                `json:"answer"`
	SessionId      string                `json:"session_id,omitempty"`
	UpdatedHistory []ConversationTurnDTO `json:"updated_history"`
}

// Streaming event payloads. The chunk stream ends with exactly one of
// StreamDoneEvent or StreamErrorEvent.

type StreamMessageEvent struct {
	Chunk string `json:"chunk"`
}

type StreamDoneEvent struct {
	Done          bool   `json:"done"`
	FullAnswer    string `json:"full_answer"`
	HistoryLength int    `json:"history_length"`
}

type StreamErrorEvent struct {
	Error string `json:"error"`
}

func TurnsToDTO(turns []store.ConversationTurn) []ConversationTurnDTO {
	out := make([]ConversationTurnDTO, len(turns))
	for i, turn := range turns {
		out[i] = ConversationTurnDTO{
			Question:  turn.Question,
			Answer:    turn.Answer,
			Timestamp: turn.Timestamp,
		}
	}
	return out
}

func TurnsFromDTO(turns []ConversationTurnDTO) []store.ConversationTurn {
	out := make([]store.ConversationTurn, len(turns))
	for i, turn := range turns {
		out[i] = store.ConversationTurn{
			Question:  turn.Question,
			Answer:    turn.Answer,
			Timestamp: turn.Timestamp,
		}
	}
	return out
}
