package models

import "time"

// DefaultRole is assigned to accounts created without an explicit role.
const DefaultRole = "user"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
