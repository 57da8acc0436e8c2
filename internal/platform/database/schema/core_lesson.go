package schema

// LessonTable represents the 'core.lesson' table
type LessonTable struct {
	Table     string
	ID        string
	CourseID  string
	Title     string
	ClassTime string
	ZoomLink  string
	Status    string
	CreatedAt string
	UpdatedAt string
}

// Lesson is the schema definition for core.lesson
var Lesson = LessonTable{
	Table:     "core.lesson",
	ID:        "id",
	CourseID:  "courseid",
	Title:     "title",
	ClassTime: "classtime",
	ZoomLink:  "zoomlink",
	Status:    "status",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t LessonTable) Columns() []string {
	return []string{
		t.ID, t.CourseID, t.Title, t.ClassTime, t.ZoomLink,
		t.Status, t.CreatedAt, t.UpdatedAt,
	}
}
