// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package chat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gambitacademy/gambit/internal/chat"
)

/*
TestConversationID verifies the identifier is symmetric and pair-unique.
*/
func TestConversationID(t *testing.T) {
	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t,
			chat.ConversationID("user-a", "user-b"),
			chat.ConversationID("user-b", "user-a"),
		)
	})

	t.Run("sorted order", func(t *testing.T) {
		assert.Equal(t, "user-a_user-b", chat.ConversationID("user-b", "user-a"))
	})

	t.Run("distinct pairs stay distinct", func(t *testing.T) {
		assert.NotEqual(t,
			chat.ConversationID("user-a", "user-b"),
			chat.ConversationID("user-a", "user-c"),
		)
	})

	t.Run("round trip", func(t *testing.T) {
		id := chat.ConversationID("user-b", "user-a")
		left, right := chat.ParticipantsOf(id)
		assert.Equal(t, "user-a", left)
		assert.Equal(t, "user-b", right)
	})
}
