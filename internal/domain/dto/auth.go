package dto

// RegisterRequest is the JSON body for POST /api/v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3" example:"trader42"`
	Email    string `json:"email" binding:"required,email" example:"trader42@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"s3cret-pass"`
}

// LoginRequest is the JSON body for POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"trader42"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"86400"` // seconds
}
