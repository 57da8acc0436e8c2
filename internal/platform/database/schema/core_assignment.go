package schema

// AssignmentTable represents the 'core.assignment' table
type AssignmentTable struct {
	Table       string
	ID          string
	CourseID    string
	Technique   string
	Description string
	DueDate     string
	Solution    string
	CreatedAt   string
	UpdatedAt   string
}

// Assignment is the schema definition for core.assignment
var Assignment = AssignmentTable{
	Table:       "core.assignment",
	ID:          "id",
	CourseID:    "courseid",
	Technique:   "technique",
	Description: "description",
	DueDate:     "duedate",
	Solution:    "solution",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t AssignmentTable) Columns() []string {
	return []string{
		t.ID, t.CourseID, t.Technique, t.Description, t.DueDate,
		t.Solution, t.CreatedAt, t.UpdatedAt,
	}
}
