// Package seed holds the fixed mock dataset the portal starts from. It
// resolves login identities and initializes the course store whenever the
// durable storage carries no state yet.
package seed

import "github.com/derin/uniportal/internal/app/models"

// Credential is one entry of the fixed login list. UserID points at the
// principal record inside the dataset for the given role.
type Credential struct {
	Email    string
	Password string
	Role     models.Role
	UserID   string
}

// Dataset is the complete mock dataset.
type Dataset struct {
	Students    []models.Student
	Faculty     []models.Faculty
	Admin       models.Admin
	Credentials []Credential
	Courses     []models.Course
	Assignments []models.Assignment
}

// StudentByID returns the seeded student with the given id, or nil.
func (d *Dataset) StudentByID(id string) *models.Student {
	for i := range d.Students {
		if d.Students[i].ID == id {
			return &d.Students[i]
		}
	}
	return nil
}

// FacultyByID returns the seeded faculty member with the given id, or nil.
func (d *Dataset) FacultyByID(id string) *models.Faculty {
	for i := range d.Faculty {
		if d.Faculty[i].ID == id {
			return &d.Faculty[i]
		}
	}
	return nil
}

// Default returns the fixed dataset used on first run.
func Default() *Dataset {
	return &Dataset{
		Students: []models.Student{
			{
				User: models.User{
					ID:    "1",
					Name:  "Anita Desai",
					Email: "student@example.com",
					Role:  models.RoleStudent,
				},
				RollNumber:      "CS2022001",
				Department:      "Computer Science",
				Year:            "3",
				MobileNumber:    "9876543210",
				EnrolledCourses: []string{"c2"},
				Attendance: map[string]float64{
					"CS102": 88,
				},
			},
			{
				User: models.User{
					ID:    "2",
					Name:  "Rahul Verma",
					Email: "rahul.verma@example.com",
					Role:  models.RoleStudent,
				},
				RollNumber:      "CS2022002",
				Department:      "Computer Science",
				Year:            "3",
				MobileNumber:    "9876543211",
				EnrolledCourses: []string{"c2", "c3"},
				Attendance: map[string]float64{
					"CS102": 76,
					"MA201": 92,
				},
			},
			{
				User: models.User{
					ID:    "3",
					Name:  "Sneha Pillai",
					Email: "sneha.pillai@example.com",
					Role:  models.RoleStudent,
				},
				RollNumber:      "EC2023015",
				Department:      "Electronics",
				Year:            "2",
				MobileNumber:    "9876543212",
				EnrolledCourses: []string{},
				Attendance:      map[string]float64{},
			},
		},
		Faculty: []models.Faculty{
			{
				User: models.User{
					ID:    "1",
					Name:  "Dr. Meera Krishnan",
					Email: "faculty@example.com",
					Role:  models.RoleFaculty,
				},
				FacultyID:        "FAC101",
				Department:       "Computer Science",
				Courses:          []string{"c1", "c2"},
				AssignedStudents: []string{"1", "2"},
				WorkExperience: []models.WorkExperience{
					{
						ID:               "w1",
						OrganizationName: "National Institute of Technology",
						Position:         "Assistant Professor",
						StartYear:        "2014",
						EndYear:          "2019",
					},
				},
			},
			{
				User: models.User{
					ID:    "2",
					Name:  "Prof. Arjun Nair",
					Email: "arjun.nair@example.com",
					Role:  models.RoleFaculty,
				},
				FacultyID:        "FAC102",
				Department:       "Mathematics",
				Courses:          []string{"c3"},
				AssignedStudents: []string{"2", "3"},
			},
		},
		Admin: models.Admin{
			User: models.User{
				ID:    "1",
				Name:  "Vikram Rao",
				Email: "admin@example.com",
				Role:  models.RoleAdmin,
			},
		},
		Credentials: []Credential{
			{Email: "student@example.com", Password: "password", Role: models.RoleStudent, UserID: "1"},
			{Email: "faculty@example.com", Password: "password", Role: models.RoleFaculty, UserID: "1"},
			{Email: "admin@example.com", Password: "password", Role: models.RoleAdmin, UserID: "1"},
		},
		Courses: []models.Course{
			{
				ID:               "c1",
				CourseID:         "CS101",
				Name:             "Introduction to Programming",
				Description:      "Fundamentals of programming with hands-on labs.",
				FacultyID:        "1",
				EnrolledStudents: []string{},
			},
			{
				ID:               "c2",
				CourseID:         "CS102",
				Name:             "Data Structures",
				Description:      "Lists, trees, graphs and the algorithms over them.",
				FacultyID:        "1",
				EnrolledStudents: []string{"1", "2"},
			},
			{
				ID:               "c3",
				CourseID:         "MA201",
				Name:             "Linear Algebra",
				Description:      "Vector spaces, matrices and linear transformations.",
				FacultyID:        "2",
				EnrolledStudents: []string{"2"},
			},
			{
				ID:               "c4",
				CourseID:         "HS105",
				Name:             "Technical Communication",
				Description:      "Writing and presenting technical material.",
				EnrolledStudents: []string{},
			},
		},
		Assignments: []models.Assignment{
			{
				ID:          "a1",
				CourseID:    "c2",
				Title:       "Binary Search Trees",
				Description: "Implement insert, delete and traversal.",
				DueDate:     "2025-10-15",
				CreatedAt:   "2025-09-20",
			},
			{
				ID:          "a2",
				CourseID:    "c2",
				Title:       "Graph Shortest Paths",
				Description: "Dijkstra on an adjacency list.",
				DueDate:     "2025-11-01",
				CreatedAt:   "2025-10-02",
			},
			{
				ID:          "a3",
				CourseID:    "c3",
				Title:       "Eigenvalue Worksheet",
				Description: "Problems 1-12 from chapter 5.",
				DueDate:     "2025-10-20",
				CreatedAt:   "2025-09-28",
			},
		},
	}
}
