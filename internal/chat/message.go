// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

/*
Package chat implements direct messaging between students and coaches.

It covers the full messaging path: conversation identity, message persistence,
an in-memory presence directory of live connections, and best-effort push
delivery to connected receivers over Server-Sent Events.

# Delivery Model

Persistence is the source of truth. A message is accepted once its INSERT
commits; live delivery to a connected receiver is attempted at most once and
never retried. An offline (or slow) receiver reads missed messages from
history on the next fetch.
*/
package chat

import "time"

// # Domain Entities

// Message is a single direct message between two users.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	ReceiverID     string    `json:"receiver_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// Contact is a chat roster entry: someone the current user can message.
type Contact struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// # Field Identifiers

const (
	FieldReceiverID = "receiver_id"
	FieldContent    = "content"
	FieldUserID     = "user_id"
)

// MaxContentLength bounds a single message body (Unicode characters).
const MaxContentLength = 4000
