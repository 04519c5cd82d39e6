package entity

import (
	"sort"
	"strings"
	"time"
)

// Message is one entry in a conversation. Messages are append-only; only the
// seen flag and timestamp are mutated after creation.
type Message struct {
	ID        string     `json:"id" firestore:"id"`
	SenderID  string     `json:"sender" firestore:"sender"`
	Text      string     `json:"text" firestore:"text"`
	OrderRef  string     `json:"commande,omitempty" firestore:"commande,omitempty"`
	Timestamp time.Time  `json:"timestamp" firestore:"timestamp"`
	Seen      bool       `json:"view" firestore:"view"`
	SeenAt    *time.Time `json:"timeview" firestore:"timeview"`
}

// Conversation is a two-party message thread. For a given unordered pair of
// participants at most one conversation exists.
type Conversation struct {
	ID           string    `json:"id" firestore:"id"`
	Participants []string  `json:"participants" firestore:"participants"`
	Messages     []Message `json:"messages" firestore:"messages"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// PairKey derives the deterministic conversation identifier for an unordered
// participant pair. Using it as the document ID makes deduplication a simple
// create-if-absent instead of a racy lookup-then-create.
func PairKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "_")
}

// LatestInbound returns the most recent message NOT sent by the viewer, nil
// when every message (or none) was sent by the viewer.
func (c *Conversation) LatestInbound(viewerID string) *Message {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].SenderID != viewerID {
			return &c.Messages[i]
		}
	}
	return nil
}

// LatestSeenOutbound returns the most recent message sent BY the viewer that
// has already been marked seen; this is the read receipt the sender can see.
func (c *Conversation) LatestSeenOutbound(viewerID string) *Message {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].SenderID == viewerID && c.Messages[i].Seen {
			return &c.Messages[i]
		}
	}
	return nil
}

// HasParticipant reports whether the given user belongs to the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
