package schema

// ExamTable represents the 'core.exam' table
type ExamTable struct {
	Table     string
	ID        string
	CourseID  string
	CoachID   string
	TestName  string
	ZoomLink  string
	Status    string
	Result    string
	CreatedAt string
	UpdatedAt string
}

// Exam is the schema definition for core.exam
var Exam = ExamTable{
	Table:     "core.exam",
	ID:        "id",
	CourseID:  "courseid",
	CoachID:   "coachid",
	TestName:  "testname",
	ZoomLink:  "zoomlink",
	Status:    "status",
	Result:    "result",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t ExamTable) Columns() []string {
	return []string{
		t.ID, t.CourseID, t.CoachID, t.TestName, t.ZoomLink,
		t.Status, t.Result, t.CreatedAt, t.UpdatedAt,
	}
}
