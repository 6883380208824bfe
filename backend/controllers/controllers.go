// Package controllers holds the HTTP handlers of the MacChain backend.
package controllers

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// isNotFound separates an empty lookup from a real database failure; only the
// former may be answered with default content.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
