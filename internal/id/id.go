package id

import "github.com/google/uuid"

// New returns a random (v4) UUID string used to address drill sessions.
func New() string {
	return uuid.NewString()
}
