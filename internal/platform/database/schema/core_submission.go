package schema

// SubmissionTable represents the 'core.submission' table
type SubmissionTable struct {
	Table        string
	ID           string
	AssignmentID string
	StudentID    string
	Content      string
	Status       string
	Feedback     string
	CreatedAt    string
	UpdatedAt    string
}

// Submission is the schema definition for core.submission
var Submission = SubmissionTable{
	Table:        "core.submission",
	ID:           "id",
	AssignmentID: "assignmentid",
	StudentID:    "studentid",
	Content:      "submittedcontent",
	Status:       "status",
	Feedback:     "feedback",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t SubmissionTable) Columns() []string {
	return []string{
		t.ID, t.AssignmentID, t.StudentID, t.Content, t.Status,
		t.Feedback, t.CreatedAt, t.UpdatedAt,
	}
}
