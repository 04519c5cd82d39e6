package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"dzdeals/internal/usecase"
	"dzdeals/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type createConversationRequest struct {
	Participants []string `json:"participants" validate:"required,len=2"`
}

func (h *ChatHandler) CreateConversation(c echo.Context) error {
	var req createConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	creatorID, _ := c.Get("uid").(string)
	if creatorID == "" && len(req.Participants) > 0 {
		creatorID = req.Participants[0]
	}

	conv, created, err := h.chatUseCase.CreateConversation(c.Request().Context(), creatorID, req.Participants)
	if err != nil {
		return response.Error(c, err)
	}

	payload := map[string]interface{}{
		"conversationId": conv.ID,
		"created":        created,
		"conversation":   conv,
	}
	if created {
		return response.Created(c, payload)
	}
	return response.Success(c, payload)
}

type sendMessageRequest struct {
	SenderID string `json:"sender" validate:"required"`
	Text     string `json:"text" validate:"required"`
	OrderRef string `json:"commande"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), usecase.SendMessageInput{
		ConversationID: c.Param("id"),
		SenderID:       req.SenderID,
		Text:           req.Text,
		OrderRef:       req.OrderRef,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *ChatHandler) ListUserConversations(c echo.Context) error {
	conversations, err := h.chatUseCase.ListUserConversations(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, conversations)
}

type markSeenRequest struct {
	ViewerID string     `json:"userId" validate:"required"`
	Time     *time.Time `json:"time" validate:"required"`
}

func (h *ChatHandler) MarkSeen(c echo.Context) error {
	var req markSeenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	receipt, err := h.chatUseCase.MarkSeen(c.Request().Context(), c.Param("id"), req.ViewerID, *req.Time)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, receipt)
}
