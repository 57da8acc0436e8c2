package schema

// CourseStudentTable represents the 'core.coursestudent' enrollment join table
type CourseStudentTable struct {
	Table      string
	CourseID   string
	StudentID  string
	EnrolledAt string
}

// CourseStudent is the schema definition for core.coursestudent
var CourseStudent = CourseStudentTable{
	Table:      "core.coursestudent",
	CourseID:   "courseid",
	StudentID:  "studentid",
	EnrolledAt: "enrolledat",
}

func (t CourseStudentTable) Columns() []string {
	return []string{t.CourseID, t.StudentID, t.EnrolledAt}
}
