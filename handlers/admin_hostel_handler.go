package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hostelhub/hostelhub/database"
	"github.com/hostelhub/hostelhub/models"
	"github.com/hostelhub/hostelhub/services"
)

type HostelForm struct {
	Name        string  `form:"name" json:"name" validate:"required,min=2"`
	Description string  `form:"description" json:"description"`
	Location    string  `form:"location" json:"location"`
	Address     string  `form:"address" json:"address"`
	Price       float64 `form:"price" json:"price" validate:"required,gt=0"`
	Amenities   string  `form:"amenities" json:"amenities"`
	Rooms       int     `form:"rooms" json:"rooms"`
	Status      string  `form:"status" json:"status"`
	Featured    string  `form:"featured" json:"featured"`
}

func (f HostelForm) toInput() services.HostelInput {
	var amenities []string
	for _, a := range strings.Split(f.Amenities, ",") {
		if trimmed := strings.TrimSpace(a); trimmed != "" {
			amenities = append(amenities, trimmed)
		}
	}
	return services.HostelInput{
		Name:        f.Name,
		Description: f.Description,
		Location:    f.Location,
		Address:     f.Address,
		Price:       f.Price,
		Amenities:   amenities,
		Rooms:       f.Rooms,
		Status:      f.Status,
		Featured:    f.Featured != "" && f.Featured != "false",
	}
}

func AdminListHostels(c *fiber.Ctx) error {
	var hostels []models.Hostel
	if err := database.DB.Order("created_at DESC").Find(&hostels).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return viewModel(c, "Manage Hostels", fiber.Map{"hostels": hostels})
}

func NewHostelForm(c *fiber.Ctx) error {
	return viewModel(c, "Add New Hostel", fiber.Map{"hostel": nil})
}

// collectUploads validates and stores every attached file, splitting the
// stored paths into images and videos.
func collectUploads(c *fiber.Ctx) (images, videos []string, err error) {
	form, formErr := c.MultipartForm()
	if formErr != nil || form == nil {
		return nil, nil, nil
	}

	for _, file := range form.File["files"] {
		kind, err := services.ClassifyMedia(file)
		if err != nil {
			return nil, nil, err
		}
		path, err := services.StoreMedia(file)
		if err != nil {
			return nil, nil, err
		}
		if kind == "video" {
			videos = append(videos, path)
		} else {
			images = append(images, path)
		}
	}
	return images, videos, nil
}

func CreateHostel(c *fiber.Ctx) error {
	var form HostelForm
	if err := c.BodyParser(&form); err != nil {
		return redirectWithError(c, "/admin/hostels/new", "Invalid form submission")
	}
	if err := validate.Struct(form); err != nil {
		return redirectWithError(c, "/admin/hostels/new", "Please fill in all required fields")
	}

	images, videos, err := collectUploads(c)
	if err != nil {
		return redirectWithError(c, "/admin/hostels/new", err.Error())
	}

	if _, err := services.CreateHostel(form.toInput(), images, videos); err != nil {
		return redirectWithError(c, "/admin/hostels/new", "Failed to add hostel")
	}

	return redirectWithSuccess(c, "/admin/hostels", "Hostel added successfully!")
}

func EditHostelForm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return redirectWithError(c, "/admin/hostels", "Hostel not found")
	}

	hostel, err := services.GetHostel(id)
	if err != nil {
		if errors.Is(err, services.ErrHostelNotFound) {
			return redirectWithError(c, "/admin/hostels", "Hostel not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return viewModel(c, "Edit Hostel", fiber.Map{"hostel": hostel})
}

func UpdateHostel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return redirectWithError(c, "/admin/hostels", "Hostel not found")
	}

	var form HostelForm
	if err := c.BodyParser(&form); err != nil {
		return redirectWithError(c, "/admin/hostels/edit/"+id.String(), "Invalid form submission")
	}
	if err := validate.Struct(form); err != nil {
		return redirectWithError(c, "/admin/hostels/edit/"+id.String(), "Please fill in all required fields")
	}

	var removeImages, removeVideos []string
	if mpForm, err := c.MultipartForm(); err == nil && mpForm != nil {
		removeImages = mpForm.Value["remove_images"]
		removeVideos = mpForm.Value["remove_videos"]
	}

	images, videos, err := collectUploads(c)
	if err != nil {
		return redirectWithError(c, "/admin/hostels/edit/"+id.String(), err.Error())
	}

	if _, err := services.UpdateHostel(id, form.toInput(), images, videos, removeImages, removeVideos); err != nil {
		if errors.Is(err, services.ErrHostelNotFound) {
			return redirectWithError(c, "/admin/hostels", "Hostel not found")
		}
		return redirectWithError(c, "/admin/hostels/edit/"+id.String(), "Failed to update hostel")
	}

	return redirectWithSuccess(c, "/admin/hostels", "Hostel updated successfully!")
}

func DeleteHostel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return redirectWithError(c, "/admin/hostels", "Hostel not found")
	}

	if err := services.DeleteHostel(id); err != nil {
		return redirectWithError(c, "/admin/hostels", "Failed to delete hostel")
	}

	return redirectWithSuccess(c, "/admin/hostels", "Hostel deleted successfully!")
}

func ToggleHostelStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Redirect("/admin/hostels")
	}

	newStatus, err := services.ToggleHostelStatus(id)
	if err != nil {
		// Missing hostel: no-op, no flash, back to the list.
		return c.Redirect("/admin/hostels")
	}

	return redirectWithSuccess(c, "/admin/hostels", "Hostel marked as "+newStatus)
}
