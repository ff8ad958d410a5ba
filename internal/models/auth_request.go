package models

// SignupRequest represents the request body for POST /api/auth/signup
type SignupRequest struct {
	Name            string `json:"name" binding:"required,min=3,max=50"`
	Email           string `json:"email" binding:"required,email,max=100"`
	Password        string `json:"password" binding:"required,min=6,max=40"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// SigninRequest represents the request body for POST /api/auth/signin
type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
