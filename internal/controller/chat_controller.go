package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"ironlady-ai-be/internal/dto"
	"ironlady-ai-be/internal/pkg/serverutils"
	"ironlady-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/valyala/fasthttp"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	AskStream(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Post("", c.Ask)
	h.Post("/stream", c.AskStream)
	h.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	h.Get("/ws", websocket.New(c.askWebsocket))
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.chatService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer question", res))
}

// AskStream answers over Server-Sent Events. Each generated chunk is a
// `message` event; the stream ends with exactly one `done` or `error`
// event.
func (c *chatController) AskStream(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/event-stream")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	ctx.Set(fiber.HeaderConnection, "keep-alive")

	// The fiber ctx is released once this handler returns; the pipeline
	// runs on its own context and is drained inside the stream writer.
	events, commit := c.chatService.AskStream(context.Background(), &req)

	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		for event := range events {
			switch {
			case event.Err != nil:
				writeSSE(w, "error", dto.StreamErrorEvent{Error: event.Err.Error()})
			case event.Done:
				commit(event.UpdatedHistory)
				writeSSE(w, "done", dto.StreamDoneEvent{
					Done:          true,
					FullAnswer:    event.FullAnswer,
					HistoryLength: len(event.UpdatedHistory),
				})
			default:
				writeSSE(w, "message", dto.StreamMessageEvent{Chunk: event.Chunk})
			}
			if err := w.Flush(); err != nil {
				// Client went away; drain remaining events so the
				// pipeline goroutine can finish.
				for range events {
				}
				return
			}
		}
	}))

	return nil
}

func writeSSE(w *bufio.Writer, eventName string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventName, data)
}

// askWebsocket serves one question per connection: read a ChatRequest
// frame, push chunk frames, then a done or error frame, and close.
func (c *chatController) askWebsocket(conn *websocket.Conn) {
	defer conn.Close()

	var req dto.ChatRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(dto.StreamErrorEvent{Error: "invalid request payload"})
		return
	}
	if req.Question == "" {
		_ = conn.WriteJSON(dto.StreamErrorEvent{Error: "question is required"})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, commit := c.chatService.AskStream(ctx, &req)
	for event := range events {
		var err error
		switch {
		case event.Err != nil:
			err = conn.WriteJSON(dto.StreamErrorEvent{Error: event.Err.Error()})
		case event.Done:
			commit(event.UpdatedHistory)
			err = conn.WriteJSON(dto.StreamDoneEvent{
				Done:          true,
				FullAnswer:    event.FullAnswer,
				HistoryLength: len(event.UpdatedHistory),
			})
		default:
			err = conn.WriteJSON(dto.StreamMessageEvent{Chunk: event.Chunk})
		}
		if err != nil {
			cancel()
			for range events {
			}
			return
		}
	}
}
