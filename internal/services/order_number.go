package services

import (
	"crypto/rand"
	"fmt"
	"time"
)

// GenerateOrderNumber returns a human-readable order number of the form
// YYYY-MM-DD-XXXXXX, where the suffix is 6 uppercase hex characters from a
// random source. Uniqueness is enforced only by the order number's unique
// index; a collision fails the placement transaction and the caller may
// retry.
func GenerateOrderNumber() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("order number entropy: %v", err))
	}
	return fmt.Sprintf("%s-%X", time.Now().Format("2006-01-02"), b)
}
