package utils

import (
	"strings"
	"testing"

	"github.com/hostelhub/hostelhub/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestGenerateBookingReference(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Hostel{}, &models.Reservation{}))

	code, err := GenerateBookingReference(db)
	assert.NoError(t, err)
	assert.Len(t, code, 8)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(referenceAlphabet, r), "unexpected character %q", r)
	}

	// Ambiguous characters never appear.
	assert.NotContains(t, code, "0")
	assert.NotContains(t, code, "O")
	assert.NotContains(t, code, "1")
	assert.NotContains(t, code, "I")
	assert.NotContains(t, code, "L")
}
