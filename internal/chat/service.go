// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package chat

import (
	"context"
	"time"

	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/internal/platform/ctxutil"
	"github.com/gambitacademy/gambit/internal/platform/sec"
	"github.com/gambitacademy/gambit/internal/platform/validate"
	"github.com/gambitacademy/gambit/pkg/uuid"
)

// Service implements the messaging use cases.
type Service struct {
	messageRepository MessageRepository
	rosterRepository  RosterRepository
	presence          *Directory
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	messageRepo MessageRepository,
	rosterRepo RosterRepository,
	presence *Directory,
) *Service {
	return &Service{
		messageRepository: messageRepo,
		rosterRepository:  rosterRepo,
		presence:          presence,
	}
}

// SendInput holds the data for one send attempt.
type SendInput struct {
	SenderID   string
	ReceiverID string
	Content    string
}

/*
Send validates, persists, and best-effort-delivers one direct message.

Description: The message is accepted once the insert commits. If the receiver
holds a live stream, the event is pushed at most once; a full queue or an
offline receiver is not an error, because history is the source of truth.

Parameters:
  - context: context.Context
  - input: SendInput

Returns:
  - *Message: The accepted message (with ID and conversation identity)
  - err: Validation or persistence failures
*/
func (service *Service) Send(context context.Context, input SendInput) (*Message, error) {

	// Reject before touching storage: nothing is persisted for invalid input.
	validator := &validate.Validator{}
	validator.Required(FieldReceiverID, input.ReceiverID).
		UUID(FieldReceiverID, input.ReceiverID).
		Required(FieldContent, input.Content).
		MaxLen(FieldContent, input.Content, MaxContentLength).
		Custom(FieldReceiverID, input.ReceiverID == input.SenderID, "Cannot message yourself")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	message := &Message{
		ID:             uuid.New(),
		ConversationID: ConversationID(input.SenderID, input.ReceiverID),
		SenderID:       input.SenderID,
		ReceiverID:     input.ReceiverID,
		Content:        input.Content,
		CreatedAt:      time.Now(),
	}

	if err := service.messageRepository.Create(context, message); err != nil {
		return nil, err
	}

	// Best-effort live push. Dropped events are only logged: the receiver
	// will see the message in history either way.
	if connection, online := service.presence.Lookup(input.ReceiverID); online {
		if !connection.Deliver(Event{Type: EventTypeMessage, Message: message}) {
			ctxutil.GetLogger(context).Warn("chat_event_dropped",
				"receiver_id", input.ReceiverID,
				"message_id", message.ID,
			)
		}
	}

	return message, nil
}

/*
History returns the full conversation between the requesting user and a peer,
ordered oldest first.

Parameters:
  - context: context.Context
  - userID: string (requesting user)
  - peerID: string

Returns:
  - []Message: Ordered history (empty slice when none)
  - err: Validation or retrieval failures
*/
func (service *Service) History(context context.Context, userID, peerID string) ([]Message, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUserID, peerID).UUID(FieldUserID, peerID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.messageRepository.ListByConversation(context, ConversationID(userID, peerID))
}

/*
Roster returns who the user may chat with, based on their role.

Description: Coaches see the distinct students across their courses; students
see the coaches of their enrolled courses. Admins see no roster.

Parameters:
  - context: context.Context
  - userID: string
  - role: sec.UserRole

Returns:
  - []Contact: Roster entries
  - err: Retrieval failures
*/
func (service *Service) Roster(context context.Context, userID string, role sec.UserRole) ([]Contact, error) {
	switch role {
	case sec.RoleCoach:
		return service.rosterRepository.ListStudentsOfCoach(context, userID)
	case sec.RoleStudent:
		return service.rosterRepository.ListCoachesOfStudent(context, userID)
	default:
		return nil, apperr.Forbidden("No chat roster for this role")
	}
}
