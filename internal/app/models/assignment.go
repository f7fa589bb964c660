package models

// Assignment represents coursework attached to a course.
//
// CourseID is a weak reference to Course.ID; deleting the course does not
// cascade, so an assignment can outlive its course. CreatedAt is stamped at
// creation as a plain date string and never updated afterwards.
type Assignment struct {
	ID          string `json:"id" example:"a1"`
	CourseID    string `json:"courseId" example:"c1"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" example:"2025-10-15"`
	CreatedAt   string `json:"createdAt" example:"2025-09-01"`
}
