package v1

import (
	"net/http"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"

	"github.com/gin-gonic/gin"
)

// ChatHandler defines the interface for handling private and global chat
// operations
type ChatHandler interface {
	EnsureConversation(ctx *gin.Context)
	ListConversations(ctx *gin.Context)
	GetConversation(ctx *gin.Context)
	DeleteConversation(ctx *gin.Context)
	SendMessage(ctx *gin.Context)
	ListMessages(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
	MarkMessageRead(ctx *gin.Context)
	UnreadTotal(ctx *gin.Context)
	SendGlobalMessage(ctx *gin.Context)
	ListGlobalMessages(ctx *gin.Context)
}

type chatHandler struct {
	chatService chat.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService chat.ChatService) ChatHandler {
	return &chatHandler{chatService: chatService}
}

// EnsureConversation opens or returns the conversation with a friend.
func (handler *chatHandler) EnsureConversation(ctx *gin.Context) {
	conversation, err := handler.chatService.EnsureConversation(ctx, CurrentUserID(ctx), ctx.Param("userId"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toConversationResponse(conversation, CurrentUserID(ctx)))
}

// ListConversations returns the caller's conversations by recency.
// With unread_only=true only conversations holding unread messages are
// returned.
func (handler *chatHandler) ListConversations(ctx *gin.Context) {
	userID := CurrentUserID(ctx)
	conversations, err := handler.chatService.ListConversations(ctx, userID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	unreadOnly := ctx.Query("unread_only") == "true"

	responses := make([]*ConversationResponse, 0, len(conversations))
	for _, conversation := range conversations {
		if unreadOnly && conversation.UnreadCount == 0 {
			continue
		}
		responses = append(responses, toConversationResponse(conversation, userID))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetConversation returns one conversation the caller participates in.
func (handler *chatHandler) GetConversation(ctx *gin.Context) {
	conversationID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	conversation, err := handler.chatService.GetConversation(ctx, CurrentUserID(ctx), conversationID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toConversationResponse(conversation, CurrentUserID(ctx)))
}

// DeleteConversation removes a conversation with its messages.
func (handler *chatHandler) DeleteConversation(ctx *gin.Context) {
	conversationID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	if err := handler.chatService.DeleteConversation(ctx, CurrentUserID(ctx), conversationID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SendMessage stores a message in a conversation.
func (handler *chatHandler) SendMessage(ctx *gin.Context) {
	conversationID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}
	var request SendMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	message, err := handler.chatService.SendMessage(ctx, CurrentUserID(ctx), conversationID, chat.MessageInput{
		Content:  request.Content,
		FileURL:  request.FileURL,
		FileType: request.FileType,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toMessageResponse(message))
}

// ListMessages returns a page of messages, newest first.
func (handler *chatHandler) ListMessages(ctx *gin.Context) {
	conversationID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	page, pageSize := queryPage(ctx)
	messages, total, err := handler.chatService.ListMessages(ctx, CurrentUserID(ctx), conversationID, page, pageSize)
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]*MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, toMessageResponse(message))
	}
	ctx.JSON(http.StatusOK, gin.H{"messages": responses, "total": total})
}

// MarkRead marks the other participant's messages as read.
func (handler *chatHandler) MarkRead(ctx *gin.Context) {
	conversationID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	messageIDs, err := handler.chatService.MarkRead(ctx, CurrentUserID(ctx), conversationID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"read_message_ids": messageIDs})
}

// MarkMessageRead acknowledges a single message.
func (handler *chatHandler) MarkMessageRead(ctx *gin.Context) {
	messageID, ok := pathUint(ctx, "id")
	if !ok {
		return
	}

	message, err := handler.chatService.MarkMessageRead(ctx, CurrentUserID(ctx), messageID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toMessageResponse(message))
}

// UnreadTotal returns the caller's unread message count across all
// conversations.
func (handler *chatHandler) UnreadTotal(ctx *gin.Context) {
	total, err := handler.chatService.UnreadTotal(ctx, CurrentUserID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"unread": total})
}

// SendGlobalMessage stores a message in the shared room.
func (handler *chatHandler) SendGlobalMessage(ctx *gin.Context) {
	var request SendMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBindError(ctx, err)
		return
	}

	message, err := handler.chatService.SendGlobalMessage(ctx, CurrentUserID(ctx), chat.MessageInput{
		Content:  request.Content,
		FileURL:  request.FileURL,
		FileType: request.FileType,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toGlobalMessageResponse(message))
}

// ListGlobalMessages returns recent messages in the shared room.
func (handler *chatHandler) ListGlobalMessages(ctx *gin.Context) {
	messages, err := handler.chatService.ListGlobalMessages(ctx, queryInt(ctx, "limit", 50))
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]*GlobalMessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, toGlobalMessageResponse(message))
	}
	ctx.JSON(http.StatusOK, responses)
}
