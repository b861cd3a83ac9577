package database

import (
	"fmt"
	"log"

	config "github.com/hostelhub/hostelhub/configs"
	"github.com/hostelhub/hostelhub/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Hostel{},
		&models.Reservation{},
		&models.PaymentInfo{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedAdmin creates the single bootstrap admin account on first startup.
func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
	}

	adminName := config.Config("ADMIN_FULL_NAME")
	if adminName == "" {
		adminName = "Administrator"
	}

	adminUser := models.User{
		Name:     adminName,
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	log.Println("✅ Admin user seeded successfully")
}

// SeedDefaults inserts the default site settings, payment details and a few
// sample listings so a fresh install renders a usable site.
func SeedDefaults() {
	var settingCount int64
	DB.Model(&models.Setting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.Setting{
			SiteName:     "HostelHub",
			SiteTagline:  "Find Your Perfect Stay",
			ContactEmail: "info@hostelhub.com",
			ContactPhone: "+233 XX XXX XXXX",
			AboutText:    "Welcome to HostelHub - your trusted platform for finding comfortable and affordable hostel accommodations.",
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Fatalf("🔥 Failed to seed site settings: %v", err)
		}
		log.Println("✅ Default settings created")
	}

	var paymentCount int64
	DB.Model(&models.PaymentInfo{}).Count(&paymentCount)
	if paymentCount == 0 {
		payment := models.PaymentInfo{
			BankName:      "Ghana Commercial Bank",
			AccountNumber: "1234567890",
			AccountName:   "HostelHub Ltd",
			MomoProvider:  "MTN Mobile Money",
			MomoNumber:    "0241234567",
			MomoName:      "HostelHub",
			Instructions:  "Please include your booking reference in the payment description.",
			IsActive:      true,
		}
		if err := DB.Create(&payment).Error; err != nil {
			log.Fatalf("🔥 Failed to seed payment info: %v", err)
		}
		log.Println("✅ Default payment info created")
	}

	var hostelCount int64
	DB.Model(&models.Hostel{}).Count(&hostelCount)
	if hostelCount == 0 {
		sampleHostels := []models.Hostel{
			{
				Name:        "Sunrise Hostel",
				Description: "A beautiful hostel located in the heart of the city. Features modern amenities, comfortable beds, and a friendly atmosphere. Perfect for students and young professionals looking for affordable accommodation.",
				Location:    "Accra, Ghana",
				Address:     "123 Independence Avenue, Accra",
				Price:       150,
				Amenities:   []string{"WiFi", "Air Conditioning", "Security", "Laundry", "Kitchen", "Study Room"},
				Status:      "available",
				Featured:    true,
				Rooms:       5,
			},
			{
				Name:        "Ocean View Hostel",
				Description: "Experience stunning ocean views from this coastal hostel. Recently renovated rooms with modern facilities. Walking distance to the beach and local attractions.",
				Location:    "Cape Coast, Ghana",
				Address:     "45 Beach Road, Cape Coast",
				Price:       200,
				Amenities:   []string{"WiFi", "Ocean View", "Restaurant", "Security", "Parking"},
				Status:      "available",
				Featured:    true,
				Rooms:       8,
			},
			{
				Name:        "Green Valley Hostel",
				Description: "Peaceful hostel surrounded by nature. Ideal for those seeking a quiet environment for studying or relaxation. Eco-friendly facilities and organic meals available.",
				Location:    "Kumasi, Ghana",
				Address:     "78 Garden Street, Kumasi",
				Price:       120,
				Amenities:   []string{"WiFi", "Garden", "Organic Meals", "Study Area", "Bicycle Rental"},
				Status:      "booked",
				Rooms:       3,
			},
		}

		for i := range sampleHostels {
			if err := DB.Create(&sampleHostels[i]).Error; err != nil {
				log.Fatalf("🔥 Failed to seed sample hostels: %v", err)
			}
		}
		log.Println("✅ Sample hostels created")
	}
}
