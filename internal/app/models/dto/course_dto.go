package dto

// CreateCourseRequest carries the fields of a new course. The id and the
// empty enrolledStudents set are assigned by the store.
type CreateCourseRequest struct {
	CourseID    string `json:"courseId" binding:"required,notblank" example:"CS101"`
	Name        string `json:"name" binding:"required,notblank" example:"Introduction to Programming"`
	Description string `json:"description"`
	FacultyID   string `json:"facultyId,omitempty"`
}

// UpdateCourseRequest is a partial update for an existing course. Nil
// fields are left untouched.
type UpdateCourseRequest struct {
	CourseID    *string `json:"courseId,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	FacultyID   *string `json:"facultyId,omitempty"`
}

// AssignFacultyRequest sets the owning faculty of a course.
type AssignFacultyRequest struct {
	FacultyID string `json:"facultyId" binding:"required"`
}

// EnrollmentRequest enrolls or unenrolls a student on a course.
type EnrollmentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
}
