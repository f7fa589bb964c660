package models

// WorkExperience is one entry of a faculty member's work history.
type WorkExperience struct {
	ID               string `json:"id"`
	OrganizationName string `json:"organizationName"`
	Position         string `json:"position"`
	StartYear        string `json:"startYear"`
	EndYear          string `json:"endYear"`
}

// Faculty is a principal with the faculty role.
type Faculty struct {
	User

	FacultyID  string `json:"facultyId"`
	Department string `json:"department"`

	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Gender       string `json:"gender,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`

	// WorkExperience is ordered oldest first.
	WorkExperience []WorkExperience `json:"workExperience,omitempty"`

	// Courses holds ids of courses this faculty member owns.
	Courses []string `json:"courses"`

	// AssignedStudents holds student ids under this faculty member's care.
	AssignedStudents []string `json:"assignedStudents"`
}

// Base returns the common user fields.
func (f *Faculty) Base() *User { return &f.User }

// Clone returns a deep copy safe to hand out to callers.
func (f *Faculty) Clone() Principal {
	cp := *f
	cp.WorkExperience = append([]WorkExperience(nil), f.WorkExperience...)
	cp.Courses = append([]string(nil), f.Courses...)
	cp.AssignedStudents = append([]string(nil), f.AssignedStudents...)
	return &cp
}

// Admin is a principal with the admin role. It carries no extra fields.
type Admin struct {
	User
}

// Base returns the common user fields.
func (a *Admin) Base() *User { return &a.User }

// Clone returns a copy safe to hand out to callers.
func (a *Admin) Clone() Principal {
	cp := *a
	return &cp
}
