package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPairKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKey("alice", "bob"), PairKey("bob", "alice"))
	assert.Equal(t, "alice_bob", PairKey("bob", "alice"))
}

func TestLatestInbound(t *testing.T) {
	conv := &Conversation{
		Messages: []Message{
			{ID: "m1", SenderID: "alice"},
			{ID: "m2", SenderID: "bob"},
			{ID: "m3", SenderID: "alice"},
		},
	}

	inbound := conv.LatestInbound("alice")
	if assert.NotNil(t, inbound) {
		assert.Equal(t, "m2", inbound.ID)
	}

	onlyOwn := &Conversation{Messages: []Message{{ID: "m1", SenderID: "alice"}}}
	assert.Nil(t, onlyOwn.LatestInbound("alice"))
}

func TestLatestSeenOutbound(t *testing.T) {
	seenAt := time.Now()
	conv := &Conversation{
		Messages: []Message{
			{ID: "m1", SenderID: "alice", Seen: true, SeenAt: &seenAt},
			{ID: "m2", SenderID: "alice"},
			{ID: "m3", SenderID: "bob", Seen: true},
		},
	}

	receipt := conv.LatestSeenOutbound("alice")
	if assert.NotNil(t, receipt) {
		assert.Equal(t, "m1", receipt.ID)
	}

	assert.Nil(t, (&Conversation{}).LatestSeenOutbound("alice"))
}

func TestHasParticipant(t *testing.T) {
	conv := &Conversation{Participants: []string{"alice", "bob"}}
	assert.True(t, conv.HasParticipant("bob"))
	assert.False(t, conv.HasParticipant("eve"))
}
