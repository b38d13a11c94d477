package ws

import "encoding/json"

// Event types accepted from clients.
const (
	EventChatMessage   = "chat_message"
	EventMarkRead      = "mark_read"
	EventTyping        = "typing"
	EventGlobalMessage = "global_message"
)

// Event types emitted to clients.
const (
	EventConnectionEstablished = "connection_established"
	EventMessagesRead          = "messages_read"
	EventUserJoined            = "user_joined"
	EventUserLeft              = "user_left"
	EventError                 = "error"
)

// inboundEvent is the envelope clients send. A mark_read frame carries
// either a conversation_id (read everything) or a message_id.
type inboundEvent struct {
	Type           string `json:"type"`
	ConversationID uint   `json:"conversation_id,omitempty"`
	MessageID      uint   `json:"message_id,omitempty"`
	Content        string `json:"content,omitempty"`
}

// outboundEvent is the envelope delivered to clients.
type outboundEvent struct {
	Type           string      `json:"type"`
	ConversationID uint        `json:"conversation_id,omitempty"`
	UserID         string      `json:"user_id,omitempty"`
	Message        interface{} `json:"message,omitempty"`
	MessageIDs     []uint      `json:"message_ids,omitempty"`
	Error          string      `json:"error,omitempty"`
}

func encodeEvent(event outboundEvent) []byte {
	payload, err := json.Marshal(event)
	if err != nil {
		return []byte(`{"type":"error","error":"encoding failure"}`)
	}
	return payload
}
