package embedding

// Task types passed to providers that distinguish query and document
// embeddings (Gemini does; Ollama ignores them).
const (
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
)

// Result holds a generated embedding vector.
type Result struct {
	Values []float32
}

// Provider defines the interface for generating text embeddings
type Provider interface {
	Generate(text string, taskType string) (*Result, error)
}
