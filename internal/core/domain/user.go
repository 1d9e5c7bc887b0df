package domain

import "time"

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a user of the application in the domain.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (UUID)
	Username       string       `json:"username"`
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	PasswordHash   *string      `json:"-"` // nil for OAuth-only accounts
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"` // provider's subject id, empty for local accounts
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// GetUserID implements the user response mapping contract.
func (u *User) GetUserID() string { return u.UserID }

// GetUsername implements the user response mapping contract.
func (u *User) GetUsername() string { return u.Username }

// GetName implements the user response mapping contract.
func (u *User) GetName() string { return u.Name }

// GetEmail implements the user response mapping contract.
func (u *User) GetEmail() string { return u.Email }

// GoogleUserInfo holds the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
