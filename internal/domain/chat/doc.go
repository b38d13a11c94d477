// Package chat contains the messaging domain: private conversations,
// their messages, read receipts and the global chat room.
package chat
