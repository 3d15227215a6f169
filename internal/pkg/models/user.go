package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account in the system
type User struct {
	ID        uuid.UUID `json:"id" bson:"_id" db:"id"`
	Email     string    `json:"email" bson:"email" db:"email"`
	FullName  string    `json:"name" bson:"name" db:"fullname"`
	Password  string    `json:"-" bson:"password" db:"password"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" db:"updated_at"`
}

// RegisterRequest represents a request to create a new account
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a request to authenticate with email and password
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
