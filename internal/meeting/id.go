package meeting

import "github.com/google/uuid"

// IDFunc generates a new meeting id.
type IDFunc func() string

// NewID returns a random UUID string.
func NewID() string {
	return uuid.NewString()
}
