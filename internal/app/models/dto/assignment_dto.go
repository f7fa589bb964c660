package dto

// CreateAssignmentRequest carries the fields of a new assignment. The id
// and createdAt stamp are assigned by the store.
type CreateAssignmentRequest struct {
	CourseID    string `json:"courseId" binding:"required" example:"c1"`
	Title       string `json:"title" binding:"required,notblank"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" binding:"required" example:"2025-10-15"`
}

// UpdateAssignmentRequest is a partial update for an existing assignment.
// createdAt is immutable and deliberately absent here.
type UpdateAssignmentRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}
