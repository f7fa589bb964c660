package models

// Course represents one course in the catalog.
//
// ID is system-generated and unique; CourseID is the human-assigned code
// (e.g. "CS101") and is not guaranteed unique by construction. FacultyID is
// a weak reference to a Faculty principal, empty meaning unassigned.
type Course struct {
	ID          string `json:"id" example:"c1"`
	CourseID    string `json:"courseId" example:"CS101"`
	Name        string `json:"name" example:"Introduction to Programming"`
	Description string `json:"description"`
	FacultyID   string `json:"facultyId,omitempty"`

	// EnrolledStudents holds student ids, insertion-ordered, duplicate-free.
	EnrolledStudents []string `json:"enrolledStudents"`
}

// Clone returns a copy with its own enrolledStudents slice.
func (c Course) Clone() Course {
	c.EnrolledStudents = append([]string(nil), c.EnrolledStudents...)
	return c
}

// HasStudent reports whether the student id is enrolled.
func (c Course) HasStudent(studentID string) bool {
	for _, id := range c.EnrolledStudents {
		if id == studentID {
			return true
		}
	}
	return false
}
