package util

import (
	"github.com/google/uuid"
)

// RandomID generates a random identity suitable for guests and tests
func RandomID() string {
	return uuid.New().String()
}
