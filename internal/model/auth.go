package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are JWT claims for an authenticated browser session. The
// session key is minted once at login and addresses the in-memory game.
type SessionClaims struct {
	Username   string `json:"username"`
	SessionKey string `json:"sessionKey"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Gender    Gender `json:"gender,omitempty"`
	BirthDate string `json:"birthDate,omitempty"` // YYYY-MM-DD
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
