package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

// MessageHandler serves order chat threads.
type MessageHandler struct {
	chat ports.ChatService
}

func NewMessageHandler(chat ports.ChatService) *MessageHandler {
	return &MessageHandler{chat: chat}
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// List handles GET /v1/orders/:id/messages.
//
// @Summary      List an order's chat thread
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      200  {array}  domain.Message
// @Router       /v1/orders/{id}/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	messages, err := h.chat.Messages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// Send handles POST /v1/orders/:id/messages.
//
// @Summary      Send a chat message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Order id"
// @Param        body  body      sendMessageRequest  true  "Message text"
// @Success      201   {object}  domain.Message
// @Failure      422   {object}  map[string]string
// @Router       /v1/orders/{id}/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	viewer, err := viewerFromContext(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	msg, err := h.chat.Send(c.Request().Context(), ports.SendMessageInput{
		OrderID: c.Param("id"),
		Sender:  viewer,
		Text:    req.Text,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// Stream handles GET /v1/orders/:id/messages/stream: a server-sent-events
// feed backed by the chat watcher. Each poll tick emits the full thread as
// one event; the watcher is torn down when the client disconnects.
//
// @Summary      Stream an order's chat thread (SSE)
// @Tags         messages
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      200
// @Router       /v1/orders/{id}/messages/stream [get]
func (h *MessageHandler) Stream(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	err := h.chat.Watch(c.Request().Context(), c.Param("id"), func(messages []domain.Message) {
		payload, err := json.Marshal(messages)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		w.Flush()
	})
	// Client hangup ends the watch; that is a normal termination.
	if err != nil && c.Request().Context().Err() != nil {
		return nil
	}
	return err
}
