package schema

// CourseTable represents the 'core.course' table
type CourseTable struct {
	Table       string
	ID          string
	CoachID     string
	Title       string
	Slug        string
	Description string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// Course is the schema definition for core.course
var Course = CourseTable{
	Table:       "core.course",
	ID:          "id",
	CoachID:     "coachid",
	Title:       "title",
	Slug:        "slug",
	Description: "description",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

func (t CourseTable) Columns() []string {
	return []string{
		t.ID, t.CoachID, t.Title, t.Slug, t.Description,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
