package models

// Role discriminates the three kinds of portal principals.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// User holds the fields common to every principal. The Role field is the
// discriminant of the serialized form.
type User struct {
	ID             string `json:"id" example:"1"`                  // Unique within the role's collection
	Name           string `json:"name" example:"Anita Desai"`      // Display name
	Email          string `json:"email" example:"user@example.com"` // Login identity
	Role           Role   `json:"role" example:"student"`          // Discriminant
	ProfilePicture string `json:"profilePicture,omitempty"`        // Optional avatar URL
}
