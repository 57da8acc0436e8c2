// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package chat

import "strings"

// ConversationID derives the canonical conversation identifier for a pair of
// users: the two IDs sorted lexicographically and joined with an underscore.
//
// The ordering makes the identifier symmetric (either participant derives the
// same value), and the underscore join keeps distinct pairs distinct since
// user IDs are UUIDs and never contain underscores.
func ConversationID(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return userA + "_" + userB
}

// ParticipantsOf splits a conversation identifier back into its two user IDs.
func ParticipantsOf(conversationID string) (string, string) {
	left, right, _ := strings.Cut(conversationID, "_")
	return left, right
}
