package dto

import "github.com/derin/uniportal/internal/app/models"

// Profile updates are typed per role instead of accepting an arbitrary
// partial object. Only fields belonging to the role's known field set can
// be merged into the active principal; a payload for the wrong role is
// rejected before any merge happens. Nil fields are left untouched.

// UpdateStudentProfileRequest is a partial update for a student principal.
type UpdateStudentProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	MobileNumber   *string `json:"mobileNumber,omitempty" binding:"omitempty,numeric,min=7,max=15"`
	DateOfBirth    *string `json:"dateOfBirth,omitempty"`
	Gender         *string `json:"gender,omitempty" binding:"omitempty,oneof=Female Male Others"`
	FatherName     *string `json:"fatherName,omitempty"`
	MotherName     *string `json:"motherName,omitempty"`
	FirstGraduate  *bool   `json:"firstGraduate,omitempty"`
	GithubLink     *string `json:"githubLink,omitempty" binding:"omitempty,url"`
	LinkedinLink   *string `json:"linkedinLink,omitempty" binding:"omitempty,url"`

	Education *models.Education `json:"education,omitempty"`
}

// UpdateFacultyProfileRequest is a partial update for a faculty principal.
type UpdateFacultyProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	Department     *string `json:"department,omitempty"`
	DateOfBirth    *string `json:"dateOfBirth,omitempty"`
	Gender         *string `json:"gender,omitempty" binding:"omitempty,oneof=Female Male Others"`
	MobileNumber   *string `json:"mobileNumber,omitempty" binding:"omitempty,numeric,min=7,max=15"`

	// WorkExperience, when present, replaces the whole ordered list.
	WorkExperience []models.WorkExperience `json:"workExperience,omitempty"`
}

// UpdateAdminProfileRequest is a partial update for an admin principal.
type UpdateAdminProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// AttendanceUpdateRequest records attendance percentages for one course.
// Entries map student ids to a percentage in [0,100].
type AttendanceUpdateRequest struct {
	CourseID string             `json:"courseId" binding:"required"`
	Entries  map[string]float64 `json:"entries" binding:"required,dive,gte=0,lte=100"`
}
