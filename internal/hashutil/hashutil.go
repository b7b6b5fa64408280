package hashutil

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

// NewID creates a 7-character hex ID from the given parts and a timestamp.
// Two calls with the same parts differ as long as the timestamps differ.
func NewID(at time.Time, parts ...string) string {
	seed := strings.Join(parts, "\x00") + "\x00" + fmt.Sprintf("%d", at.UnixNano())
	return IDFromSeed(seed)
}

// IDFromSeed creates a deterministic 7-character hex ID from a seed string.
func IDFromSeed(seed string) string {
	hash := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", hash[:4])[:7]
}
