// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package chat

import (
	"sync"

	"github.com/gambitacademy/gambit/internal/platform/constants"
)

// # Live Events

// EventTypeMessage is pushed to a receiver's stream when a message arrives.
const EventTypeMessage = "message.created"

// Event is a single item pushed to a live chat stream.
type Event struct {
	Type    string   `json:"type"`
	Message *Message `json:"message"`
}

// # Connections

// Conn is the handle for one live chat stream.
//
// Events are buffered; when the buffer is full the event is dropped rather
// than blocking the sender. The persisted message remains readable via history.
type Conn struct {
	userID string
	events chan Event
}

// UserID returns the identity this connection was registered under.
func (connection *Conn) UserID() string { return connection.userID }

// Events exposes the receive side of the connection's event queue.
func (connection *Conn) Events() <-chan Event { return connection.events }

// Deliver enqueues an event without blocking.
// It reports whether the event was accepted.
func (connection *Conn) Deliver(event Event) bool {
	select {
	case connection.events <- event:
		return true
	default:
		return false
	}
}

// # Presence Directory

// Directory tracks which users currently hold a live chat stream.
//
// # Concurrency
//
// All methods are safe for concurrent use. Reads (Lookup) vastly outnumber
// writes (Register/Unregister), hence the RWMutex.
type Directory struct {
	mu          sync.RWMutex
	connections map[string]*Conn
}

// NewDirectory constructs an empty presence directory.
func NewDirectory() *Directory {
	return &Directory{connections: make(map[string]*Conn)}
}

// Register creates a connection for the user and makes it the user's current
// entry. A previous entry for the same user is displaced: the newer stream
// wins, and the superseded handle simply stops receiving events.
func (directory *Directory) Register(userID string) *Conn {
	connection := &Conn{
		userID: userID,
		events: make(chan Event, constants.StreamQueueSize),
	}

	directory.mu.Lock()
	directory.connections[userID] = connection
	directory.mu.Unlock()

	return connection
}

// Unregister removes the user's entry only if it still refers to the given
// handle. A stale handle (displaced by a newer Register) is a no-op, so a
// late-departing old stream cannot knock the user's live stream offline.
func (directory *Directory) Unregister(connection *Conn) {
	directory.mu.Lock()
	if current, ok := directory.connections[connection.userID]; ok && current == connection {
		delete(directory.connections, connection.userID)
	}
	directory.mu.Unlock()
}

// Lookup returns the user's current connection, or false if offline.
func (directory *Directory) Lookup(userID string) (*Conn, bool) {
	directory.mu.RLock()
	connection, ok := directory.connections[userID]
	directory.mu.RUnlock()
	return connection, ok
}

// Online reports whether the user currently holds a live stream.
func (directory *Directory) Online(userID string) bool {
	_, ok := directory.Lookup(userID)
	return ok
}

// Count returns the number of live connections, for health reporting.
func (directory *Directory) Count() int {
	directory.mu.RLock()
	defer directory.mu.RUnlock()
	return len(directory.connections)
}
