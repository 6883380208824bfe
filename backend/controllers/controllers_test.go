package controllers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(gorm.ErrRecordNotFound))
	assert.True(t, isNotFound(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)))

	// Real failures must not be mistaken for an empty result
	assert.False(t, isNotFound(errors.New("connection refused")))
	assert.False(t, isNotFound(gorm.ErrInvalidDB))
	assert.False(t, isNotFound(nil))
}
