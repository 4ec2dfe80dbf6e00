package rag

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"ironlady-ai-be/pkg/llm"
	"ironlady-ai-be/pkg/rag/docs"
	"ironlady-ai-be/pkg/rag/history"
	"ironlady-ai-be/pkg/rag/metrics"
	"ironlady-ai-be/pkg/rag/profile"
	"ironlady-ai-be/pkg/rag/prompt"
	"ironlady-ai-be/pkg/rag/response"
	"ironlady-ai-be/pkg/search"
	"ironlady-ai-be/pkg/store"
)

// ErrorPrefix marks user-visible failure answers in synchronous mode.
const ErrorPrefix = "⚠️ Error: "

// generationTemperature is slightly above zero so personalized examples
// vary while framework wording stays stable.
const generationTemperature = 0.2

var sessionPattern = regexp.MustCompile(`session\s+(\d+)`)

// Engine owns the question-to-answer pipeline: profile detection,
// retrieval, prompt assembly, generation and post-processing. It holds no
// per-session state; conversation history is passed in and returned on
// every call.
type Engine struct {
	retriever search.Retriever
	provider  llm.LLMProvider
	tracker   *metrics.Tracker
}

func NewEngine(retriever search.Retriever, provider llm.LLMProvider, tracker *metrics.Tracker) *Engine {
	if tracker == nil {
		tracker = metrics.NewTracker()
	}
	return &Engine{
		retriever: retriever,
		provider:  provider,
		tracker:   tracker,
	}
}

// Metrics exposes the engine's tracker for reporting.
func (e *Engine) Metrics() *metrics.Tracker {
	return e.tracker
}

// StreamEvent is one element of a streamed answer. Exactly one terminal
// event is emitted: either Done with the full answer and updated history,
// or Err. Updated history travels on the terminal event, never in-band.
type StreamEvent struct {
	Chunk string

	Done           bool
	FullAnswer     string
	UpdatedHistory []store.ConversationTurn

	Err error
}

// pipelineContext carries the per-question state assembled before
// generation.
type pipelineContext struct {
	detection *profile.Detection
	sourceRef string
	messages  []llm.Message
}

func (p *pipelineContext) profileName() string {
	if p.detection == nil {
		return "general"
	}
	if p.detection.Profile == profile.Custom {
		return p.detection.CustomProfile
	}
	return p.detection.Profile
}

func (e *Engine) prepare(ctx context.Context, question string, turns []store.ConversationTurn) (*pipelineContext, error) {
	detection := profile.Detect(question)

	documents, err := e.retrieve(ctx, question)
	if err != nil {
		return nil, err
	}

	// The reference is derived from retrieval ranking, independent of
	// whatever the model goes on to produce.
	sourceRef := docs.PrimaryReference(documents)
	contextBlock := docs.Format(documents)

	messages := prompt.Build(
		contextBlock,
		profile.PromptBlock(detection),
		history.Format(turns),
		question,
	)

	return &pipelineContext{
		detection: detection,
		sourceRef: sourceRef,
		messages:  messages,
	}, nil
}

func (e *Engine) retrieve(ctx context.Context, question string) ([]store.Document, error) {
	if match := sessionPattern.FindStringSubmatch(strings.ToLower(question)); match != nil {
		sessionNum, err := strconv.Atoi(match[1])
		if err == nil {
			return e.retriever.SimilaritySearch(ctx, question, search.DefaultK, &search.Filter{SessionNumber: sessionNum})
		}
	}
	return e.retriever.DiversitySearch(ctx, question)
}

func appendTurn(turns []store.ConversationTurn, question, answer string) []store.ConversationTurn {
	updated := make([]store.ConversationTurn, len(turns), len(turns)+1)
	copy(updated, turns)
	return append(updated, store.ConversationTurn{
		Question:  question,
		Answer:    answer,
		Timestamp: time.Now(),
	})
}

// Ask runs the pipeline synchronously. On failure the answer is an
// error-prefixed message and the returned history is exactly the input
// history; a failed turn is never recorded.
func (e *Engine) Ask(ctx context.Context, question string, turns []store.ConversationTurn) (string, []store.ConversationTurn) {
	start := time.Now()

	pipeline, err := e.prepare(ctx, question, turns)
	if err != nil {
		return ErrorPrefix + err.Error(), turns
	}

	raw, err := e.provider.Chat(ctx, pipeline.messages, llm.WithTemperature(generationTemperature))
	if err != nil {
		return ErrorPrefix + err.Error(), turns
	}

	answer := response.Clean(raw, question, pipeline.sourceRef)
	updated := appendTurn(turns, question, answer)

	e.tracker.Record(question, pipeline.profileName(), pipeline.detection != nil, time.Since(start))

	return answer, updated
}

// AskStream runs the pipeline in streaming mode. Chunks are forwarded in
// arrival order as they come from the provider; the channel is closed after
// the single terminal event.
func (e *Engine) AskStream(ctx context.Context, question string, turns []store.ConversationTurn) <-chan StreamEvent {
	out := make(chan StreamEvent)

	go func() {
		defer close(out)
		start := time.Now()

		pipeline, err := e.prepare(ctx, question, turns)
		if err != nil {
			e.emit(ctx, out, StreamEvent{Err: err})
			return
		}

		var full strings.Builder
		err = e.provider.ChatStream(ctx, pipeline.messages, func(chunk string) error {
			full.WriteString(chunk)
			return e.emitChunk(ctx, out, chunk)
		}, llm.WithTemperature(generationTemperature))
		if err != nil {
			e.emit(ctx, out, StreamEvent{Err: err})
			return
		}

		answer := full.String()
		if response.IsAskingForReferences(question) && pipeline.sourceRef != "" {
			citation := "\n\n📚 " + pipeline.sourceRef
			answer += citation
			if err := e.emitChunk(ctx, out, citation); err != nil {
				return
			}
		}

		updated := appendTurn(turns, question, answer)
		e.tracker.Record(question, pipeline.profileName(), pipeline.detection != nil, time.Since(start))

		e.emit(ctx, out, StreamEvent{
			Done:           true,
			FullAnswer:     answer,
			UpdatedHistory: updated,
		})
	}()

	return out
}

func (e *Engine) emitChunk(ctx context.Context, out chan<- StreamEvent, chunk string) error {
	select {
	case out <- StreamEvent{Chunk: chunk}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) emit(ctx context.Context, out chan<- StreamEvent, event StreamEvent) {
	select {
	case out <- event:
	case <-ctx.Done():
	}
}
