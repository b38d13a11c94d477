//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRepository_ConversationByPair(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	alice := SeedTestUser(t, tc, "alice-chat")
	bob := SeedTestUser(t, tc, "bob-chat")
	carol := SeedTestUser(t, tc, "carol-chat")

	conv := &chat.Conversation{}
	conv.Participants = append(conv.Participants, *alice, *bob)
	require.NoError(t, tc.ChatRepo.CreateConversation(ctx, conv))

	found, err := tc.ChatRepo.GetConversationByPair(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, found.ID)
	assert.True(t, found.HasParticipant(alice.ID))
	assert.True(t, found.HasParticipant(bob.ID))

	_, err = tc.ChatRepo.GetConversationByPair(ctx, alice.ID, carol.ID)
	assert.ErrorIs(t, err, chat.ErrNotFound)
}

func TestChatRepository_MessagesAndReadReceipts(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	alice := SeedTestUser(t, tc, "alice-msg")
	bob := SeedTestUser(t, tc, "bob-msg")

	conv := &chat.Conversation{}
	conv.Participants = append(conv.Participants, *alice, *bob)
	require.NoError(t, tc.ChatRepo.CreateConversation(ctx, conv))

	msg := &chat.Message{ConversationID: conv.ID, SenderID: alice.ID, Content: "hello"}
	require.NoError(t, tc.ChatRepo.CreateMessage(ctx, msg))

	conv.LastMessageID = &msg.ID
	require.NoError(t, tc.ChatRepo.UpdateConversation(ctx, conv))

	unread, err := tc.ChatRepo.CountUnread(ctx, conv.ID, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	// The sender's own messages never count as unread for them.
	unread, err = tc.ChatRepo.CountUnread(ctx, conv.ID, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread)

	markedIDs, err := tc.ChatRepo.MarkMessagesRead(ctx, conv.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{msg.ID}, markedIDs)

	messages, total, err := tc.ChatRepo.ListMessages(ctx, conv.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsRead)
	assert.NotNil(t, messages[0].ReadAt)

	// Marking again touches nothing.
	markedIDs, err = tc.ChatRepo.MarkMessagesRead(ctx, conv.ID, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, markedIDs)
}

func TestChatRepository_GlobalMessages(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	alice := SeedTestUser(t, tc, "alice-glob")

	require.NoError(t, tc.ChatRepo.CreateGlobalMessage(ctx, &chat.GlobalChatMessage{SenderID: alice.ID, Content: "hi all"}))
	require.NoError(t, tc.ChatRepo.CreateGlobalMessage(ctx, &chat.GlobalChatMessage{SenderID: alice.ID, Content: "again"}))

	messages, err := tc.ChatRepo.ListGlobalMessages(ctx, 1)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "again", messages[0].Content)
}
