package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ironlady-ai-be/pkg/llm"
	"ironlady-ai-be/pkg/search"
	"ironlady-ai-be/pkg/store"
)

type fakeRetriever struct {
	documents    []store.Document
	err          error
	gotFilter    *search.Filter
	diversityHit bool
}

func (f *fakeRetriever) SimilaritySearch(ctx context.Context, query string, k int, filter *search.Filter) ([]store.Document, error) {
	f.gotFilter = filter
	return f.documents, f.err
}

func (f *fakeRetriever) DiversitySearch(ctx context.Context, query string) ([]store.Document, error) {
	f.diversityHit = true
	return f.documents, f.err
}

type fakeProvider struct {
	answer string
	chunks []string
	err    error
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeProvider) ChatStream(ctx context.Context, history []llm.Message, onChunk llm.StreamFunc, opts ...llm.Option) error {
	for _, chunk := range f.chunks {
		if err := onChunk(chunk); err != nil {
			return err
		}
	}
	return f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func sessionDocuments() []store.Document {
	return []store.Document{{
		ID:      "chunk-1",
		Content: "4T Management: Target, Time, Team, Theme.",
		Metadata: map[string]interface{}{
			store.MetaSourceFile:    "4. Delivery Model.pdf",
			store.MetaSessionNumber: float64(3),
		},
	}}
}

func TestAskAppendsTurnAndCleansAnswer(t *testing.T) {
	retriever := &fakeRetriever{documents: sessionDocuments()}
	provider := &fakeProvider{answer: "The 4T framework.\n\nFor more details, see the slides."}
	engine := NewEngine(retriever, provider, nil)

	input := []store.ConversationTurn{{Question: "hi", Answer: "hello"}}
	answer, updated := engine.Ask(context.Background(), "What is 4T management?", input)

	assert.Equal(t, "The 4T framework.", answer)
	require.Len(t, updated, 2)
	assert.Equal(t, "What is 4T management?", updated[1].Question)
	assert.Equal(t, "The 4T framework.", updated[1].Answer)
	assert.False(t, updated[1].Timestamp.IsZero())
	assert.True(t, retriever.diversityHit)

	// input history untouched
	assert.Len(t, input, 1)
}

func TestAskAppendsCitationWhenAsked(t *testing.T) {
	engine := NewEngine(&fakeRetriever{documents: sessionDocuments()}, &fakeProvider{answer: "Covered in the recap."}, nil)

	answer, _ := engine.Ask(context.Background(), "which document covers the 4T recap?", nil)
	assert.True(t, strings.HasSuffix(answer, "📚 For more details, refer to **Session 3** videos and documentation (PPT/PDF)."))
}

func TestAskSessionFilteredRetrieval(t *testing.T) {
	retriever := &fakeRetriever{documents: sessionDocuments()}
	engine := NewEngine(retriever, &fakeProvider{answer: "ok"}, nil)

	engine.Ask(context.Background(), "What was covered in session 3?", nil)

	assert.False(t, retriever.diversityHit)
	require.NotNil(t, retriever.gotFilter)
	assert.Equal(t, 3, retriever.gotFilter.SessionNumber)
}

func TestAskRetrievalFailureKeepsHistory(t *testing.T) {
	retriever := &fakeRetriever{err: errors.New("vector store unavailable")}
	engine := NewEngine(retriever, &fakeProvider{answer: "never"}, nil)

	input := []store.ConversationTurn{{Question: "q1", Answer: "a1"}}
	answer, updated := engine.Ask(context.Background(), "What is 4T?", input)

	assert.True(t, strings.HasPrefix(answer, ErrorPrefix))
	assert.Contains(t, answer, "vector store unavailable")
	assert.Equal(t, input, updated)
	assert.Equal(t, 0, engine.Metrics().Snapshot().TotalQueries)
}

func TestAskGenerationFailureKeepsHistory(t *testing.T) {
	engine := NewEngine(&fakeRetriever{documents: sessionDocuments()}, &fakeProvider{err: errors.New("rate limited")}, nil)

	answer, updated := engine.Ask(context.Background(), "What is 4T?", nil)

	assert.True(t, strings.HasPrefix(answer, ErrorPrefix))
	assert.Empty(t, updated)
}

func TestAskMetrics(t *testing.T) {
	engine := NewEngine(&fakeRetriever{documents: sessionDocuments()}, &fakeProvider{answer: "ok"}, nil)

	engine.Ask(context.Background(), "I am a doctor, what is 4T?", nil)
	engine.Ask(context.Background(), "What is the Bell Curve?", nil)
	engine.Ask(context.Background(), "As an HR leader, how do I hire?", nil)

	snap := engine.Metrics().Snapshot()
	assert.Equal(t, 3, snap.TotalQueries)
	assert.Equal(t, 2, snap.ProfileDetected)
	assert.Equal(t, "66.7%", snap.DetectionRate)
}

func TestAskStreamForwardsChunksThenDone(t *testing.T) {
	provider := &fakeProvider{chunks: []string{"The 4T ", "framework ", "explained."}}
	engine := NewEngine(&fakeRetriever{documents: sessionDocuments()}, provider, nil)

	var chunks []string
	var final *StreamEvent
	for event := range engine.AskStream(context.Background(), "What is 4T?", nil) {
		switch {
		case event.Err != nil:
			t.Fatalf("unexpected stream error: %v", event.Err)
		case event.Done:
			ev := event
			final = &ev
		default:
			chunks = append(chunks, event.Chunk)
		}
	}

	assert.Equal(t, []string{"The 4T ", "framework ", "explained."}, chunks)
	require.NotNil(t, final)
	assert.Equal(t, "The 4T framework explained.", final.FullAnswer)
	require.Len(t, final.UpdatedHistory, 1)
	assert.Equal(t, "The 4T framework explained.", final.UpdatedHistory[0].Answer)
}

func TestAskStreamEmitsCitationChunkWhenAsked(t *testing.T) {
	provider := &fakeProvider{chunks: []string{"Covered in the recap."}}
	engine := NewEngine(&fakeRetriever{documents: sessionDocuments()}, provider, nil)

	var last StreamEvent
	var sawCitationChunk bool
	for event := range engine.AskStream(context.Background(), "which session is this from?", nil) {
		if strings.Contains(event.Chunk, "📚") {
			sawCitationChunk = true
		}
		last = event
	}

	assert.True(t, sawCitationChunk)
	assert.True(t, last.Done)
	assert.Contains(t, last.FullAnswer, "📚 For more details, refer to **Session 3**")
}

func TestAskStreamFailureEmitsTerminalError(t *testing.T) {
	provider := &fakeProvider{chunks: []string{"partial "}, err: errors.New("connection reset")}
	engine := NewEngine(&fakeRetriever{documents: sessionDocuments()}, provider, nil)

	var events []StreamEvent
	for event := range engine.AskStream(context.Background(), "What is 4T?", nil) {
		events = append(events, event)
	}

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	require.Error(t, last.Err)
	assert.Contains(t, last.Err.Error(), "connection reset")
	assert.False(t, last.Done)
	assert.Equal(t, 0, engine.Metrics().Snapshot().TotalQueries)
}

func TestAskStreamRetrievalFailure(t *testing.T) {
	engine := NewEngine(&fakeRetriever{err: errors.New("down")}, &fakeProvider{}, nil)

	var events []StreamEvent
	for event := range engine.AskStream(context.Background(), "What is 4T?", nil) {
		events = append(events, event)
	}

	require.Len(t, events, 1)
	assert.Error(t, events[0].Err)
}
