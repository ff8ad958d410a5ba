package models

// MessageResponse carries a human readable outcome, both for success and failure.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserInfoResponse is the profile returned after a successful signin.
type UserInfoResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
