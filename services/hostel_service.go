package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hostelhub/hostelhub/database"
	"github.com/hostelhub/hostelhub/models"
	"gorm.io/gorm"
)

var ErrHostelNotFound = errors.New("hostel not found")

// HostelFilter accumulates independently optional predicates, mirroring the
// public listing page filters.
type HostelFilter struct {
	Search   string
	Location string
	MinPrice *float64
	MaxPrice *float64
	Status   string
}

func ListHostels(filter HostelFilter) ([]models.Hostel, error) {
	q := database.DB.Model(&models.Hostel{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}

	var hostels []models.Hostel
	err := q.Order("featured DESC, created_at DESC").Find(&hostels).Error
	return hostels, err
}

func GetHostel(id uuid.UUID) (models.Hostel, error) {
	var hostel models.Hostel
	if err := database.DB.First(&hostel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Hostel{}, ErrHostelNotFound
		}
		return models.Hostel{}, err
	}
	return hostel, nil
}

func FeaturedHostels(limit int) ([]models.Hostel, error) {
	var hostels []models.Hostel
	err := database.DB.
		Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&hostels).Error
	return hostels, err
}

// SimilarHostels returns other listings sharing the hostel's town, in
// random order.
func SimilarHostels(hostel models.Hostel, limit int) ([]models.Hostel, error) {
	town := strings.TrimSpace(strings.Split(hostel.Location, ",")[0])

	var hostels []models.Hostel
	err := database.DB.
		Where("id != ? AND LOWER(location) LIKE ?", hostel.ID, "%"+strings.ToLower(town)+"%").
		Order("random()").
		Limit(limit).
		Find(&hostels).Error
	return hostels, err
}

func DistinctLocations() ([]string, error) {
	var locations []string
	err := database.DB.Model(&models.Hostel{}).Distinct().Pluck("location", &locations).Error
	return locations, err
}

type SiteStats struct {
	TotalHostels   int64 `json:"total_hostels"`
	AvailableRooms int64 `json:"available_rooms"`
	HappyGuests    int64 `json:"happy_guests"`
}

func GetSiteStats() (SiteStats, error) {
	var stats SiteStats
	if err := database.DB.Model(&models.Hostel{}).Count(&stats.TotalHostels).Error; err != nil {
		return stats, err
	}
	if err := database.DB.Model(&models.Hostel{}).
		Where("status = ?", "available").
		Select("COALESCE(SUM(rooms), 0)").
		Scan(&stats.AvailableRooms).Error; err != nil {
		return stats, err
	}
	err := database.DB.Model(&models.Reservation{}).
		Where("status = ?", "confirmed").
		Count(&stats.HappyGuests).Error
	return stats, err
}

// SetHostelStatus writes the flag unconditionally. Status is operator
// controlled; nothing here is derived from reservation activity.
func SetHostelStatus(id uuid.UUID, status string) error {
	return database.DB.Model(&models.Hostel{}).Where("id = ?", id).Update("status", status).Error
}

// ToggleHostelStatus flips available<->booked and returns the new status.
// A missing hostel is reported so the caller can skip its flash message.
func ToggleHostelStatus(id uuid.UUID) (string, error) {
	hostel, err := GetHostel(id)
	if err != nil {
		return "", err
	}

	newStatus := "booked"
	if hostel.Status == "booked" {
		newStatus = "available"
	}

	if err := SetHostelStatus(id, newStatus); err != nil {
		return "", err
	}
	return newStatus, nil
}

type HostelInput struct {
	Name        string
	Description string
	Location    string
	Address     string
	Price       float64
	Amenities   []string
	Rooms       int
	Status      string
	Featured    bool
}

func CreateHostel(input HostelInput, images, videos []string) (models.Hostel, error) {
	if input.Rooms < 1 {
		input.Rooms = 1
	}
	if input.Status == "" {
		input.Status = "available"
	}

	hostel := models.Hostel{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		Address:     input.Address,
		Price:       input.Price,
		Amenities:   input.Amenities,
		Images:      images,
		Videos:      videos,
		Rooms:       input.Rooms,
		Status:      input.Status,
		Featured:    input.Featured,
	}
	err := database.DB.Create(&hostel).Error
	return hostel, err
}

func UpdateHostel(id uuid.UUID, input HostelInput, addImages, addVideos, removeImages, removeVideos []string) (models.Hostel, error) {
	hostel, err := GetHostel(id)
	if err != nil {
		return models.Hostel{}, err
	}

	if input.Rooms < 1 {
		input.Rooms = 1
	}
	if input.Status == "" {
		input.Status = "available"
	}

	hostel.Name = input.Name
	hostel.Description = input.Description
	hostel.Location = input.Location
	hostel.Address = input.Address
	hostel.Price = input.Price
	hostel.Amenities = input.Amenities
	hostel.Rooms = input.Rooms
	hostel.Status = input.Status
	hostel.Featured = input.Featured
	hostel.Images = append(removeAll(hostel.Images, removeImages), addImages...)
	hostel.Videos = append(removeAll(hostel.Videos, removeVideos), addVideos...)

	err = database.DB.Save(&hostel).Error
	return hostel, err
}

// DeleteHostel removes the listing and cascades to its reservations in one
// transaction, so the cascade holds even where FK enforcement is off.
func DeleteHostel(id uuid.UUID) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hostel_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Hostel{}).Error
	})
}

func removeAll(list, remove []string) []string {
	if len(remove) == 0 {
		return list
	}
	drop := make(map[string]bool, len(remove))
	for _, item := range remove {
		drop[item] = true
	}
	kept := make([]string, 0, len(list))
	for _, item := range list {
		if !drop[item] {
			kept = append(kept, item)
		}
	}
	return kept
}
