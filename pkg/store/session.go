package store

import "time"

// Session is the server-side conversation state for one chat session.
type Session struct {
	ID        string             `json:"id"`
	History   []ConversationTurn `json:"history"`
	UpdatedAt time.Time          `json:"updated_at"`
}
