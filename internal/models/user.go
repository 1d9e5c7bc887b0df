package models

import (
	"database/sql"
	"time"
)

// User is the database-facing shape of a user record.
type User struct {
	UserID         string         `db:"user_id"`
	Username       string         `db:"username"`
	Email          string         `db:"email"`
	Name           string         `db:"name"`
	PasswordHash   sql.NullString `db:"password_hash"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	CreatedAt      time.Time      `db:"created_at"`
	CreatedBy      string         `db:"created_by"`
	LastUpdatedAt  time.Time      `db:"last_updated_at"`
	LastUpdatedBy  string         `db:"last_updated_by"`
	DeletedAt      *time.Time     `db:"deleted_at"`
}
