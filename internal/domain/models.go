package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity behind a verified bearer token.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// Contact is an entry in a user's contact book.
type Contact struct {
	ContactID uuid.UUID `json:"contact_id" db:"contact_id"`
	OwnerID   uuid.UUID `json:"-" db:"owner_id"`
	Name      string    `json:"name" db:"name"`
	Number    string    `json:"number" db:"number"`
	Email     string    `json:"email" db:"email"`
	Favorite  bool      `json:"favorite" db:"favorite"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
