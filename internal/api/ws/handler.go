package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/auth"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Handler upgrades authenticated requests to websocket connections and
// routes chat events through the chat service.
type Handler struct {
	hub          *Hub
	chatService  chat.ChatService
	tokenManager *auth.TokenManager
	logger       logger.Logger
	upgrader     websocket.Upgrader
}

// NewHandler creates a websocket Handler.
func NewHandler(hub *Hub, chatService chat.ChatService, tokenManager *auth.TokenManager, logger logger.Logger) *Handler {
	return &Handler{
		hub:          hub,
		chatService:  chatService,
		tokenManager: tokenManager,
		logger:       logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browsers cannot set Authorization headers on websocket
			// requests, so the origin check is left to the CORS layer.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func conversationRoom(conversationID uint) string {
	return fmt.Sprintf("conversation:%d", conversationID)
}

// Serve authenticates the request, upgrades it and runs the client
// pumps until the connection drops.
func (h *Handler) Serve(ctx *gin.Context) {
	userID, err := h.authenticate(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "invalid or missing token"})
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed: ", err)
		return
	}

	client := NewClient(userID, conn)
	h.hub.Register(client)
	h.hub.Join(client, GlobalRoom)
	h.subscribeConversations(ctx, client)

	h.hub.Send(client, encodeEvent(outboundEvent{Type: EventConnectionEstablished, UserID: userID}))
	h.hub.Broadcast(GlobalRoom, encodeEvent(outboundEvent{Type: EventUserJoined, UserID: userID}), client)

	go client.writePump()
	client.readPump(h.handleEvent)

	h.hub.Unregister(client)
	h.hub.Broadcast(GlobalRoom, encodeEvent(outboundEvent{Type: EventUserLeft, UserID: userID}), nil)
}

// authenticate accepts the token from the query string, the access
// cookie or a Bearer header, in that order.
func (h *Handler) authenticate(ctx *gin.Context) (string, error) {
	token := ctx.Query("token")
	if token == "" {
		token, _ = ctx.Cookie("access_token")
	}
	if token == "" {
		header := ctx.GetHeader("Authorization")
		token = strings.TrimPrefix(header, "Bearer ")
	}
	if token == "" {
		return "", fmt.Errorf("no token supplied")
	}
	return h.tokenManager.VerifyAccess(token)
}

// subscribeConversations joins the client to a room per existing
// conversation.
func (h *Handler) subscribeConversations(ctx context.Context, client *Client) {
	conversations, err := h.chatService.ListConversations(ctx, client.UserID())
	if err != nil {
		h.logger.Warn("Failed to list conversations for websocket client: ", err)
		return
	}
	for _, conversation := range conversations {
		h.hub.Join(client, conversationRoom(conversation.ID))
	}
}

func (h *Handler) handleEvent(client *Client, payload []byte) {
	var event inboundEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		h.hub.Send(client, encodeEvent(outboundEvent{Type: EventError, Error: "malformed event"}))
		return
	}

	ctx := context.Background()

	switch event.Type {
	case EventChatMessage:
		h.handleChatMessage(ctx, client, event)
	case EventMarkRead:
		h.handleMarkRead(ctx, client, event)
	case EventTyping:
		h.handleTyping(ctx, client, event)
	case EventGlobalMessage:
		h.handleGlobalMessage(ctx, client, event)
	default:
		h.hub.Send(client, encodeEvent(outboundEvent{Type: EventError, Error: "unknown event type"}))
	}
}

// handleTyping relays a typing indicator to the other participant. The
// sender must belong to the conversation.
func (h *Handler) handleTyping(ctx context.Context, client *Client, event inboundEvent) {
	if _, err := h.chatService.GetConversation(ctx, client.UserID(), event.ConversationID); err != nil {
		h.hub.Send(client, encodeEvent(outboundEvent{Type: EventError, Error: err.Error()}))
		return
	}

	h.hub.Broadcast(conversationRoom(event.ConversationID), encodeEvent(outboundEvent{
		Type:           EventTyping,
		ConversationID: event.ConversationID,
		UserID:         client.UserID(),
	}), client)
}

func (h *Handler) handleChatMessage(ctx context.Context, client *Client, event inboundEvent) {
	message, err := h.chatService.SendMessage(ctx, client.UserID(), event.ConversationID, chat.MessageInput{Content: event.Content})
	if err != nil {
		h.hub.Send(client, encodeEvent(outboundEvent{Type: EventError, Error: err.Error()}))
		return
	}

	room := conversationRoom(event.ConversationID)
	h.hub.Join(client, room)
	h.hub.Broadcast(room, encodeEvent(outboundEvent{
		Type:           EventChatMessage,
		ConversationID: event.ConversationID,
		UserID:         client.UserID(),
		Message:        message,
	}), nil)
}

func (h *Handler) handleMarkRead(ctx context.Context, client *Client, event inboundEvent) {
	if event.MessageID != 0 {
		message, err := h.chatService.MarkMessageRead(ctx, client.UserID(), event.MessageID)
		if err != nil {
			h.hub.Send(client, encodeEvent(outboundEvent{Type: EventError, Error: err.Error()}))
			return
		}

		h.hub.Broadcast(conversationRoom(message.ConversationID), encodeEvent(outboundEvent{
			Type:           EventMessagesRead,
			ConversationID: message.ConversationID,
			UserID:         client.UserID(),
			MessageIDs:     []uint{message.ID},
		}), nil)
		return
	}

	messageIDs, err := h.chatService.MarkRead(ctx, client.UserID(), event.ConversationID)
	if err != nil {
		h.hub.Send(client, encodeEvent(outboundEvent{Type: EventError, Error: err.Error()}))
		return
	}

	h.hub.Broadcast(conversationRoom(event.ConversationID), encodeEvent(outboundEvent{
		Type:           EventMessagesRead,
		ConversationID: event.ConversationID,
		UserID:         client.UserID(),
		MessageIDs:     messageIDs,
	}), nil)
}

func (h *Handler) handleGlobalMessage(ctx context.Context, client *Client, event inboundEvent) {
	message, err := h.chatService.SendGlobalMessage(ctx, client.UserID(), chat.MessageInput{Content: event.Content})
	if err != nil {
		h.hub.Send(client, encodeEvent(outboundEvent{Type: EventError, Error: err.Error()}))
		return
	}

	h.hub.Broadcast(GlobalRoom, encodeEvent(outboundEvent{
		Type:    EventGlobalMessage,
		UserID:  client.UserID(),
		Message: message,
	}), nil)
}
