// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package chat_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambitacademy/gambit/internal/chat"
	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/internal/platform/sec"
)

const (
	studentID = "018f0000-0000-7000-8000-000000000001"
	coachID   = "018f0000-0000-7000-8000-000000000002"
	otherID   = "018f0000-0000-7000-8000-000000000003"
)

// # Test Fakes

// fakeMessageRepository is an in-memory MessageRepository.
type fakeMessageRepository struct {
	messages  []chat.Message
	createErr error
}

func (r *fakeMessageRepository) Create(_ context.Context, message *chat.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepository) ListByConversation(_ context.Context, conversationID string) ([]chat.Message, error) {
	result := make([]chat.Message, 0)
	for _, message := range r.messages {
		if message.ConversationID == conversationID {
			result = append(result, message)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// fakeRosterRepository returns canned rosters.
type fakeRosterRepository struct {
	students []chat.Contact
	coaches  []chat.Contact
}

func (r *fakeRosterRepository) ListStudentsOfCoach(_ context.Context, _ string) ([]chat.Contact, error) {
	return r.students, nil
}

func (r *fakeRosterRepository) ListCoachesOfStudent(_ context.Context, _ string) ([]chat.Contact, error) {
	return r.coaches, nil
}

// # Fixture

type chatFixture struct {
	service  *chat.Service
	messages *fakeMessageRepository
	roster   *fakeRosterRepository
	presence *chat.Directory
}

func newChatFixture() *chatFixture {
	messages := &fakeMessageRepository{}
	roster := &fakeRosterRepository{}
	presence := chat.NewDirectory()

	return &chatFixture{
		service:  chat.NewService(messages, roster, presence),
		messages: messages,
		roster:   roster,
		presence: presence,
	}
}

// # Tests

/*
TestService_Send_PersistsForOfflineReceiver verifies that an offline receiver
does not prevent acceptance: the message lands in storage.
*/
func TestService_Send_PersistsForOfflineReceiver(t *testing.T) {
	fixture := newChatFixture()

	message, err := fixture.service.Send(context.Background(), chat.SendInput{
		SenderID:   studentID,
		ReceiverID: coachID,
		Content:    "When is the next lesson?",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, message.ID)
	assert.Equal(t, chat.ConversationID(studentID, coachID), message.ConversationID)
	assert.Len(t, fixture.messages.messages, 1)
}

/*
TestService_Send_DeliversToOnlineReceiver verifies the live push path.
*/
func TestService_Send_DeliversToOnlineReceiver(t *testing.T) {
	fixture := newChatFixture()
	connection := fixture.presence.Register(coachID)

	message, err := fixture.service.Send(context.Background(), chat.SendInput{
		SenderID:   studentID,
		ReceiverID: coachID,
		Content:    "Scholar's mate again?",
	})
	require.NoError(t, err)

	select {
	case event := <-connection.Events():
		assert.Equal(t, chat.EventTypeMessage, event.Type)
		assert.Equal(t, message.ID, event.Message.ID)
		assert.Equal(t, "Scholar's mate again?", event.Message.Content)
	default:
		t.Fatal("expected an event on the receiver's stream")
	}
}

/*
TestService_Send_Validation verifies that invalid input is rejected before
anything is persisted.
*/
func TestService_Send_Validation(t *testing.T) {
	testCases := []struct {
		name       string
		receiverID string
		content    string
	}{
		{"empty content", coachID, ""},
		{"whitespace content", coachID, "   "},
		{"missing receiver", "", "hello"},
		{"malformed receiver", "not-a-uuid", "hello"},
		{"self message", studentID, "hello me"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fixture := newChatFixture()

			_, err := fixture.service.Send(context.Background(), chat.SendInput{
				SenderID:   studentID,
				ReceiverID: tc.receiverID,
				Content:    tc.content,
			})

			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			assert.Empty(t, fixture.messages.messages, "nothing may be persisted on validation failure")
		})
	}
}

/*
TestService_Send_PersistenceFailure verifies that a storage error surfaces to
the caller and no event is pushed.
*/
func TestService_Send_PersistenceFailure(t *testing.T) {
	fixture := newChatFixture()
	fixture.messages.createErr = apperr.Internal(assert.AnError)
	connection := fixture.presence.Register(coachID)

	_, err := fixture.service.Send(context.Background(), chat.SendInput{
		SenderID:   studentID,
		ReceiverID: coachID,
		Content:    "this will not commit",
	})
	require.Error(t, err)

	select {
	case <-connection.Events():
		t.Fatal("no event may be delivered when persistence fails")
	default:
	}
}

/*
TestService_History verifies ordering and conversation scoping.
*/
func TestService_History(t *testing.T) {
	fixture := newChatFixture()
	ctx := context.Background()

	first, err := fixture.service.Send(ctx, chat.SendInput{SenderID: studentID, ReceiverID: coachID, Content: "first"})
	require.NoError(t, err)
	second, err := fixture.service.Send(ctx, chat.SendInput{SenderID: coachID, ReceiverID: studentID, Content: "second"})
	require.NoError(t, err)

	// Unrelated conversation must not leak in.
	_, err = fixture.service.Send(ctx, chat.SendInput{SenderID: studentID, ReceiverID: otherID, Content: "elsewhere"})
	require.NoError(t, err)

	// Both participants read the identical, oldest-first history.
	for _, viewer := range []struct{ me, peer string }{
		{studentID, coachID},
		{coachID, studentID},
	} {
		history, err := fixture.service.History(ctx, viewer.me, viewer.peer)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, first.ID, history[0].ID)
		assert.Equal(t, second.ID, history[1].ID)
	}

	t.Run("empty conversation yields empty slice", func(t *testing.T) {
		history, err := fixture.service.History(ctx, coachID, otherID)
		require.NoError(t, err)
		assert.NotNil(t, history)
		assert.Empty(t, history)
	})
}

/*
TestService_Roster verifies role-based roster resolution.
*/
func TestService_Roster(t *testing.T) {
	fixture := newChatFixture()
	fixture.roster.students = []chat.Contact{{ID: studentID, Username: "anna"}}
	fixture.roster.coaches = []chat.Contact{{ID: coachID, Username: "magnus"}}
	ctx := context.Background()

	students, err := fixture.service.Roster(ctx, coachID, sec.RoleCoach)
	require.NoError(t, err)
	assert.Equal(t, "anna", students[0].Username)

	coaches, err := fixture.service.Roster(ctx, studentID, sec.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "magnus", coaches[0].Username)

	_, err = fixture.service.Roster(ctx, "admin-1", sec.RoleAdmin)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}
