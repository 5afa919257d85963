package dto

// SignupRequest represents signup credentials
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupResponse confirms a created user account
type SignupResponse struct {
	Message string      `json:"message"`
	User    interface{} `json:"user"`
}

// VerifyIdentity is the decoded token identity echoed by the verify route
type VerifyIdentity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// VerifyResponse confirms a valid token
type VerifyResponse struct {
	Message string         `json:"message"`
	User    VerifyIdentity `json:"user"`
}
