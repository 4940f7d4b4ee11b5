package models

// TokenRequest represents the OAuth2 password form submitted to the token
// endpoint. The username field carries the user's email address.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
