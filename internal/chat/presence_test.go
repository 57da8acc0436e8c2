// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package chat_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambitacademy/gambit/internal/chat"
	"github.com/gambitacademy/gambit/internal/platform/constants"
)

/*
TestDirectory_RegisterLookup verifies basic presence bookkeeping.
*/
func TestDirectory_RegisterLookup(t *testing.T) {
	directory := chat.NewDirectory()

	_, ok := directory.Lookup("user-1")
	assert.False(t, ok)
	assert.False(t, directory.Online("user-1"))

	connection := directory.Register("user-1")
	found, ok := directory.Lookup("user-1")
	require.True(t, ok)
	assert.Same(t, connection, found)
	assert.Equal(t, "user-1", connection.UserID())
	assert.Equal(t, 1, directory.Count())

	directory.Unregister(connection)
	assert.False(t, directory.Online("user-1"))
	assert.Equal(t, 0, directory.Count())
}

/*
TestDirectory_NewerConnectionWins verifies that re-registering displaces the
old handle, and that unregistering the stale handle does not remove the new one.
*/
func TestDirectory_NewerConnectionWins(t *testing.T) {
	directory := chat.NewDirectory()

	older := directory.Register("user-1")
	newer := directory.Register("user-1")

	found, ok := directory.Lookup("user-1")
	require.True(t, ok)
	assert.Same(t, newer, found)
	assert.Equal(t, 1, directory.Count())

	// The stale handle must not knock the live stream offline.
	directory.Unregister(older)
	found, ok = directory.Lookup("user-1")
	require.True(t, ok)
	assert.Same(t, newer, found)

	directory.Unregister(newer)
	assert.False(t, directory.Online("user-1"))
}

/*
TestConn_DeliverNonBlocking verifies that delivery to a full queue drops the
event instead of blocking.
*/
func TestConn_DeliverNonBlocking(t *testing.T) {
	directory := chat.NewDirectory()
	connection := directory.Register("user-1")

	event := chat.Event{Type: chat.EventTypeMessage, Message: &chat.Message{Content: "hi"}}

	// Fill the queue; nobody is draining it.
	for i := 0; i < constants.StreamQueueSize; i++ {
		require.True(t, connection.Deliver(event))
	}

	// The next delivery must return immediately with false.
	assert.False(t, connection.Deliver(event))

	// Draining one slot makes room again.
	<-connection.Events()
	assert.True(t, connection.Deliver(event))
}

/*
TestDirectory_ConcurrentAccess hammers the directory from many goroutines to
catch data races under the race detector.
*/
func TestDirectory_ConcurrentAccess(t *testing.T) {
	directory := chat.NewDirectory()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", n%8)
			connection := directory.Register(userID)
			directory.Lookup(userID)
			directory.Online(userID)
			directory.Unregister(connection)
		}(i)
	}
	wg.Wait()
}
