// Package model holds the domain types shared between the handler,
// service and repository layers.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Account is a persisted user account. Password holds the bcrypt hash,
// never the plain text.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddAccountInput is what the signup handler passes to account creation.
// It is built from a validated request and deliberately has no
// password confirmation.
type AddAccountInput struct {
	Email    string
	Password string
	Name     string
}
