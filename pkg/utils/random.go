package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID creates a short unique hex ID for log entries and client
// sessions.
func GenerateID() string {
	b := make([]byte, 8) // 16 hex chars
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}
