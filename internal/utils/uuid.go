// Package utils holds small helpers shared across vim-cmd.
package utils

import "github.com/google/uuid"

// NewSessionID returns a time-ordered identifier for one client process.
// It falls back to a random v4 id if the v7 generator fails.
func NewSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
