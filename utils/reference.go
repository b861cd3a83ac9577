package utils

import (
	"math/rand"
	"time"

	"github.com/hostelhub/hostelhub/models"
	"gorm.io/gorm"
)

const referenceLength = 8

// Ambiguous characters (0/O, 1/I/L) are left out so references survive
// being read over the phone.
const referenceAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateBookingReference returns a short code not yet used by any
// reservation. Guests quote it when paying.
func GenerateBookingReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, referenceLength)
		for i := range b {
			b[i] = referenceAlphabet[seededRand.Intn(len(referenceAlphabet))]
		}
		code := string(b)

		var reservation models.Reservation
		err := tx.Where("reference = ?", code).First(&reservation).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
