package database

import (
	"testing"

	"github.com/hostelhub/hostelhub/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	DB = db
	Migrate()
}

func TestSeedAdminCreatesExactlyOne(t *testing.T) {
	setupTestDB(t)

	SeedAdmin()
	SeedAdmin()

	var admins []models.User
	assert.NoError(t, DB.Where("role = ?", "admin").Find(&admins).Error)
	assert.Len(t, admins, 1)
	assert.Equal(t, "admin@example.com", admins[0].Email)
	assert.Equal(t, "Administrator", admins[0].Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].Password), []byte("admin123")))
}

func TestSeedAdminSkipsWhenAdminExists(t *testing.T) {
	setupTestDB(t)

	existing := models.User{Name: "Owner", Email: "owner@example.com", Password: "x", Role: "admin"}
	assert.NoError(t, DB.Create(&existing).Error)

	SeedAdmin()

	var count int64
	DB.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	assert.Equal(t, int64(1), count)

	var admin models.User
	assert.NoError(t, DB.Where("role = ?", "admin").First(&admin).Error)
	assert.Equal(t, "owner@example.com", admin.Email)
}

func TestSeedDefaults(t *testing.T) {
	setupTestDB(t)

	SeedDefaults()

	var settingCount, paymentCount, hostelCount int64
	DB.Model(&models.Setting{}).Count(&settingCount)
	DB.Model(&models.PaymentInfo{}).Count(&paymentCount)
	DB.Model(&models.Hostel{}).Count(&hostelCount)
	assert.Equal(t, int64(1), settingCount)
	assert.Equal(t, int64(1), paymentCount)
	assert.Equal(t, int64(3), hostelCount)

	var setting models.Setting
	assert.NoError(t, DB.First(&setting).Error)
	assert.Equal(t, "HostelHub", setting.SiteName)
	assert.Equal(t, "Find Your Perfect Stay", setting.SiteTagline)

	var payment models.PaymentInfo
	assert.NoError(t, DB.First(&payment).Error)
	assert.Equal(t, "Ghana Commercial Bank", payment.BankName)
	assert.True(t, payment.IsActive)

	var featured int64
	DB.Model(&models.Hostel{}).Where("featured = ?", true).Count(&featured)
	assert.Equal(t, int64(2), featured)
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	setupTestDB(t)

	SeedDefaults()
	SeedDefaults()

	var settingCount, paymentCount, hostelCount int64
	DB.Model(&models.Setting{}).Count(&settingCount)
	DB.Model(&models.PaymentInfo{}).Count(&paymentCount)
	DB.Model(&models.Hostel{}).Count(&hostelCount)
	assert.Equal(t, int64(1), settingCount)
	assert.Equal(t, int64(1), paymentCount)
	assert.Equal(t, int64(3), hostelCount)
}
