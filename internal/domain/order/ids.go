package order

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewExternalID is a millisecond timestamp plus random hex. Uniqueness is best effort.
func NewExternalID(now time.Time) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("NB-%d", now.UnixMilli())
	}
	return fmt.Sprintf("NB-%d-%s", now.UnixMilli(), hex.EncodeToString(b))
}
