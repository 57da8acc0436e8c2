// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package chat

import "context"

// # Message Data Access

// MessageRepository defines the data access contract for chat messages.
type MessageRepository interface {

	/*
		Create persists a new message as a single atomic insert.

		Parameters:
		  - context: context.Context
		  - message: *Message

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, message *Message) error

	/*
		ListByConversation returns every message in a conversation,
		ordered by creation time ascending (oldest first).

		Parameters:
		  - context: context.Context
		  - conversationID: string

		Returns:
		  - []Message: Ordered history
		  - error: Retrieval failures
	*/
	ListByConversation(context context.Context, conversationID string) ([]Message, error)
}

// # Roster Data Access

// RosterRepository resolves who a user is allowed to chat with.
//
// The roster is derived from course enrollment: a coach sees the distinct
// students across their courses, a student sees the coaches of the courses
// they are enrolled in.
type RosterRepository interface {

	/*
		ListStudentsOfCoach returns the distinct students enrolled in any
		of the coach's courses.

		Parameters:
		  - context: context.Context
		  - coachID: string

		Returns:
		  - []Contact: Roster entries
		  - error: Retrieval failures
	*/
	ListStudentsOfCoach(context context.Context, coachID string) ([]Contact, error)

	/*
		ListCoachesOfStudent returns the distinct coaches of the courses
		the student is enrolled in.

		Parameters:
		  - context: context.Context
		  - studentID: string

		Returns:
		  - []Contact: Roster entries
		  - error: Retrieval failures
	*/
	ListCoachesOfStudent(context context.Context, studentID string) ([]Contact, error)
}
