package dto

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"student@example.com"`
	Password string `json:"password" binding:"required" example:"password"`
}

// LoginResponse reports the resolved role and user id after a login.
type LoginResponse struct {
	Role   string `json:"role" example:"student"`
	UserID string `json:"userId" example:"1"`
}
