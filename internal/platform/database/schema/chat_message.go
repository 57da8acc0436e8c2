package schema

// ChatMessageTable represents the 'chat.message' table
type ChatMessageTable struct {
	Table          string
	ID             string
	ConversationID string
	SenderID       string
	ReceiverID     string
	Content        string
	CreatedAt      string
}

// ChatMessage is the schema definition for chat.message
var ChatMessage = ChatMessageTable{
	Table:          "chat.message",
	ID:             "id",
	ConversationID: "conversationid",
	SenderID:       "senderid",
	ReceiverID:     "receiverid",
	Content:        "content",
	CreatedAt:      "createdat",
}

func (t ChatMessageTable) Columns() []string {
	return []string{t.ID, t.ConversationID, t.SenderID, t.ReceiverID, t.Content, t.CreatedAt}
}
