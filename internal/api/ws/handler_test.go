//go:build unit
// +build unit

package ws

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	pkgTesting "github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChatService answers GetConversation from a fixed participant map.
type stubChatService struct {
	participants map[uint][]string
}

func (s *stubChatService) GetConversation(ctx context.Context, userID string, conversationID uint) (*chat.Conversation, error) {
	for _, participant := range s.participants[conversationID] {
		if participant == userID {
			return &chat.Conversation{}, nil
		}
	}
	return nil, chat.ErrNotParticipant
}

func (s *stubChatService) EnsureConversation(ctx context.Context, userID, otherID string) (*chat.Conversation, error) {
	return nil, chat.ErrNotFound
}

func (s *stubChatService) ListConversations(ctx context.Context, userID string) ([]*chat.Conversation, error) {
	return nil, nil
}

func (s *stubChatService) DeleteConversation(ctx context.Context, userID string, conversationID uint) error {
	return chat.ErrNotFound
}

func (s *stubChatService) SendMessage(ctx context.Context, userID string, conversationID uint, input chat.MessageInput) (*chat.Message, error) {
	return nil, chat.ErrNotParticipant
}

func (s *stubChatService) ListMessages(ctx context.Context, userID string, conversationID uint, page, pageSize int) ([]*chat.Message, int64, error) {
	return nil, 0, nil
}

func (s *stubChatService) MarkRead(ctx context.Context, userID string, conversationID uint) ([]uint, error) {
	return nil, nil
}

func (s *stubChatService) MarkMessageRead(ctx context.Context, userID string, messageID uint) (*chat.Message, error) {
	return nil, chat.ErrNotFound
}

func (s *stubChatService) UnreadTotal(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (s *stubChatService) SendGlobalMessage(ctx context.Context, userID string, input chat.MessageInput) (*chat.GlobalChatMessage, error) {
	return nil, chat.ErrEmptyMessage
}

func (s *stubChatService) ListGlobalMessages(ctx context.Context, limit int) ([]*chat.GlobalChatMessage, error) {
	return nil, nil
}

func decodeOutbound(t *testing.T, payload []byte) outboundEvent {
	t.Helper()
	var event outboundEvent
	require.NoError(t, json.Unmarshal(payload, &event))
	return event
}

func TestHandler_Typing_RelayedToConversation(t *testing.T) {
	hub := newTestHub(t)
	service := &stubChatService{participants: map[uint][]string{7: {"alice", "bruno"}}}
	handler := NewHandler(hub, service, nil, pkgTesting.SetupTestLogger(t))

	alice := NewClient("alice", nil)
	bruno := NewClient("bruno", nil)
	hub.Register(alice)
	hub.Register(bruno)
	hub.Join(alice, conversationRoom(7))
	hub.Join(bruno, conversationRoom(7))

	handler.handleEvent(alice, []byte(`{"type":"typing","conversation_id":7}`))

	received := decodeOutbound(t, <-bruno.send)
	assert.Equal(t, EventTyping, received.Type)
	assert.Equal(t, uint(7), received.ConversationID)
	assert.Equal(t, "alice", received.UserID)

	// The typist does not hear their own indicator.
	assert.Empty(t, alice.send)
}

func TestHandler_Typing_RejectsNonParticipant(t *testing.T) {
	hub := newTestHub(t)
	service := &stubChatService{participants: map[uint][]string{7: {"alice", "bruno"}}}
	handler := NewHandler(hub, service, nil, pkgTesting.SetupTestLogger(t))

	alice := NewClient("alice", nil)
	carla := NewClient("carla", nil)
	hub.Register(alice)
	hub.Register(carla)
	hub.Join(alice, conversationRoom(7))
	// Carla lingers in the room despite not being a participant.
	hub.Join(carla, conversationRoom(7))

	handler.handleEvent(carla, []byte(`{"type":"typing","conversation_id":7}`))

	received := decodeOutbound(t, <-carla.send)
	assert.Equal(t, EventError, received.Type)
	assert.NotEmpty(t, received.Error)

	// Nothing reaches the real participant.
	assert.Empty(t, alice.send)
}
