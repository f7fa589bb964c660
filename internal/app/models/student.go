package models

// EducationDetail describes a completed school record.
type EducationDetail struct {
	InstitutionName string `json:"institutionName"`
	StartYear       string `json:"startYear"`
	EndYear         string `json:"endYear"`
	Percentage      string `json:"percentage"`
}

// CollegeEducationDetail describes the ongoing college record.
type CollegeEducationDetail struct {
	InstitutionName        string `json:"institutionName"`
	StartYear              string `json:"startYear"`
	ExpectedGraduationYear string `json:"expectedGraduationYear"`
	CGPA                   string `json:"cgpa"`
}

// Education groups the optional education sub-records of a student.
type Education struct {
	Tenth   *EducationDetail        `json:"tenth,omitempty"`
	Twelfth *EducationDetail        `json:"twelfth,omitempty"`
	College *CollegeEducationDetail `json:"college,omitempty"`
}

// Student is a principal with the student role.
type Student struct {
	User

	RollNumber   string `json:"rollNumber"`
	Department   string `json:"department"`
	Year         string `json:"year"`
	MobileNumber string `json:"mobileNumber"`

	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	Gender        string `json:"gender,omitempty"`
	FatherName    string `json:"fatherName,omitempty"`
	MotherName    string `json:"motherName,omitempty"`
	FirstGraduate *bool  `json:"firstGraduate,omitempty"`
	GithubLink    string `json:"githubLink,omitempty"`
	LinkedinLink  string `json:"linkedinLink,omitempty"`

	// EnrolledCourses holds course ids, insertion-ordered.
	EnrolledCourses []string `json:"enrolledCourses"`

	// Attendance maps a course code to a percentage in [0,100].
	Attendance map[string]float64 `json:"attendance"`

	Education *Education `json:"education,omitempty"`
}

// Base returns the common user fields.
func (s *Student) Base() *User { return &s.User }

// Clone returns a deep copy safe to hand out to callers.
func (s *Student) Clone() Principal {
	cp := *s
	cp.EnrolledCourses = append([]string(nil), s.EnrolledCourses...)
	if s.Attendance != nil {
		cp.Attendance = make(map[string]float64, len(s.Attendance))
		for code, pct := range s.Attendance {
			cp.Attendance[code] = pct
		}
	}
	if s.FirstGraduate != nil {
		fg := *s.FirstGraduate
		cp.FirstGraduate = &fg
	}
	if s.Education != nil {
		edu := *s.Education
		if s.Education.Tenth != nil {
			t := *s.Education.Tenth
			edu.Tenth = &t
		}
		if s.Education.Twelfth != nil {
			t := *s.Education.Twelfth
			edu.Twelfth = &t
		}
		if s.Education.College != nil {
			c := *s.Education.College
			edu.College = &c
		}
		cp.Education = &edu
	}
	return &cp
}
