package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random identifier, used for event and
// configuration-change IDs.
func GenerateID() string {
	return uuid.New().String()
}
