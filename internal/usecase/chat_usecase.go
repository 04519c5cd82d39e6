package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"dzdeals/internal/domain/entity"
	"dzdeals/internal/domain/repository"
	"dzdeals/internal/infrastructure/ratelimit"
	"dzdeals/pkg/errors"
	"dzdeals/pkg/logger"
)

type ChatUseCase struct {
	convRepo    repository.ConversationRepository
	broadcaster Broadcaster
	rateLimiter *ratelimit.RateLimiter
}

func NewChatUseCase(
	convRepo repository.ConversationRepository,
	broadcaster Broadcaster,
) *ChatUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ChatUseCase{
		convRepo:    convRepo,
		broadcaster: broadcaster,
		rateLimiter: rateLimiter,
	}
}

// CreateConversation opens (or returns) the unique thread for a participant
// pair. The second return value reports whether a new thread was created.
func (uc *ChatUseCase) CreateConversation(ctx context.Context, creatorID string, participants []string) (*entity.Conversation, bool, error) {
	if len(participants) != 2 {
		return nil, false, errors.BadRequest("A conversation requires exactly two participants", nil)
	}
	a, b := participants[0], participants[1]
	if a == "" || b == "" || a == b {
		return nil, false, errors.BadRequest("Participants must be two distinct users", nil)
	}

	if allowed, waitTime := uc.rateLimiter.Allow(creatorID, "create_conversation"); !allowed {
		logger.Warn("CreateConversation rate limited: user %s must wait %v", creatorID, waitTime)
		return nil, false, errors.TooManyRequests("Rate limit exceeded. Please wait before creating another conversation")
	}

	conv, created, err := uc.convRepo.GetOrCreateByPair(ctx, a, b)
	if err != nil {
		return nil, false, err
	}
	return conv, created, nil
}

type SendMessageInput struct {
	ConversationID string
	SenderID       string
	Text           string
	OrderRef       string
}

type wsEnvelope struct {
	Type           string          `json:"type"`
	ConversationID string          `json:"conversationId"`
	Message        *entity.Message `json:"message"`
}

// SendMessage appends a message to the thread and pushes it to every
// connected socket. The append is transactional; the push is best effort.
func (uc *ChatUseCase) SendMessage(ctx context.Context, input SendMessageInput) (*entity.Message, error) {
	text := strings.TrimSpace(input.Text)
	if input.SenderID == "" || text == "" {
		return nil, errors.BadRequest("sender and text are required", nil)
	}

	if allowed, waitTime := uc.rateLimiter.Allow(input.SenderID, "send_message"); !allowed {
		logger.Warn("SendMessage rate limited: user %s must wait %v", input.SenderID, waitTime)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please slow down")
	}

	message := entity.Message{
		ID:        uuid.New().String(),
		SenderID:  input.SenderID,
		Text:      text,
		OrderRef:  input.OrderRef,
		Timestamp: time.Now(),
	}

	_, err := uc.convRepo.Mutate(ctx, input.ConversationID, func(conv *entity.Conversation) error {
		if !conv.HasParticipant(input.SenderID) {
			return errors.Forbidden("Sender does not belong to this conversation", nil)
		}
		conv.Messages = append(conv.Messages, message)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.pushEvent("new-message", input.ConversationID, &message)

	return &message, nil
}

func (uc *ChatUseCase) pushEvent(eventType, conversationID string, message *entity.Message) {
	payload, err := json.Marshal(wsEnvelope{
		Type:           eventType,
		ConversationID: conversationID,
		Message:        message,
	})
	if err != nil {
		logger.Error("Failed to marshal websocket event: %v", err)
		return
	}
	uc.broadcaster.Broadcast(payload)
}

func (uc *ChatUseCase) GetConversation(ctx context.Context, id string) (*entity.Conversation, error) {
	return uc.convRepo.GetByID(ctx, id)
}

func (uc *ChatUseCase) ListUserConversations(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	if userID == "" {
		return nil, errors.BadRequest("L'ID utilisateur est requis", nil)
	}
	return uc.convRepo.ListByParticipant(ctx, userID)
}

// SeenReceipt is what MarkSeen hands back: the id and seen-time of the
// viewer's most recent outbound message that the other party has read.
type SeenReceipt struct {
	MessageID string     `json:"messageId"`
	SeenAt    *time.Time `json:"timeview"`
}

// MarkSeen flags the latest inbound message as read at the client-supplied
// time and returns the viewer's own read receipt. The stamp is overwritten on
// every call; with no inbound message there is nothing to mark.
func (uc *ChatUseCase) MarkSeen(ctx context.Context, conversationID, viewerID string, viewTime time.Time) (*SeenReceipt, error) {
	if viewerID == "" || viewTime.IsZero() {
		return nil, errors.BadRequest("userId and time are required", nil)
	}

	conv, err := uc.convRepo.Mutate(ctx, conversationID, func(c *entity.Conversation) error {
		if !c.HasParticipant(viewerID) {
			return errors.Forbidden("Viewer does not belong to this conversation", nil)
		}
		inbound := c.LatestInbound(viewerID)
		if inbound == nil {
			return errors.BadRequest("Aucun message à marquer comme vu", nil)
		}
		seenAt := viewTime
		inbound.Seen = true
		inbound.SeenAt = &seenAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	receipt := &SeenReceipt{}
	if outbound := conv.LatestSeenOutbound(viewerID); outbound != nil {
		receipt.MessageID = outbound.ID
		receipt.SeenAt = outbound.SeenAt
	}
	return receipt, nil
}
