package uid

import (
	"github.com/google/uuid"
)

// NewSessionID generates a random identifier for one game session,
// used to correlate its log lines
func NewSessionID() string {
	return uuid.NewString()
}
