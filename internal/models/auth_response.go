package models

// TokenResponse represents the response after successful authentication
type TokenResponse struct {
	AccessToken string `json:"access_token"` // signed JWT
	TokenType   string `json:"token_type"`   // always "bearer"
}
