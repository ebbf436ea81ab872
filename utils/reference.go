package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewBookingRef returns a short human-quotable booking reference.
func NewBookingRef() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK-" + strings.ToUpper(id[:12])
}
