package store

import "time"

// Metadata keys attached to retrieved program content chunks.
// Not every chunk carries every key.
const (
	MetaSourceFile    = "source_file"
	MetaParentFolder  = "parent_folder"
	MetaSessionNumber = "session_number"
	MetaSessionTitle  = "session_title"
	MetaFacilitator   = "facilitator"
)

// DefaultIngestionBucket is the parent folder assigned to content that was
// ingested without an explicit category.
const DefaultIngestionBucket = "lms_content"

// Document represents a retrieved content chunk for the RAG pipeline
type Document struct {
	ID       string                 `json:"id"`
	Content  string                 `json:"content"`
	Score    float32                `json:"score"`
	Metadata map[string]interface{} `json:"metadata"`

	// Embedding is carried through retrieval for diversity re-ranking;
	// it is never serialized to clients.
	Embedding []float32 `json:"-"`
}

// Meta returns a metadata value as string, with ok=false when absent or empty.
func (d Document) Meta(key string) (string, bool) {
	v, ok := d.Metadata[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// SessionNumber returns the session_number metadata value when present.
// The ingestion pipeline writes it as a JSON number, so both float64 and
// int forms are accepted.
func (d Document) SessionNumber() (int, bool) {
	v, ok := d.Metadata[MetaSessionNumber]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, n > 0
	case int64:
		return int(n), n > 0
	case float64:
		return int(n), n > 0
	}
	return 0, false
}

// ConversationTurn is one question/answer exchange in a chat session.
// History is owned by the caller and passed by value on every call; the
// RAG core never stores it.
type ConversationTurn struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}
