package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the client-visible view of an active refresh credential.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}
