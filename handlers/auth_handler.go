package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/hostelhub/hostelhub/database"
	"github.com/hostelhub/hostelhub/middleware"
	"github.com/hostelhub/hostelhub/models"
	"github.com/hostelhub/hostelhub/services"
	"github.com/hostelhub/hostelhub/utils"
	"golang.org/x/crypto/bcrypt"
)

type LoginForm struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

type RegisterForm struct {
	Name            string `form:"name" json:"name" validate:"required,min=2"`
	Email           string `form:"email" json:"email" validate:"required,email"`
	Phone           string `form:"phone" json:"phone"`
	Password        string `form:"password" json:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" validate:"required"`
}

func LoginPage(c *fiber.Ctx) error {
	if user := middleware.CurrentUser(c); user != nil {
		if user.Role == "admin" {
			return c.Redirect("/admin")
		}
		return c.Redirect("/")
	}
	return viewModel(c, "Login", fiber.Map{})
}

func Login(c *fiber.Ctx) error {
	var form LoginForm
	if err := c.BodyParser(&form); err != nil {
		return redirectWithError(c, "/login", "Invalid form submission")
	}
	if err := validate.Struct(form); err != nil {
		return redirectWithError(c, "/login", "Invalid email or password")
	}

	var user models.User
	if err := database.DB.Where("email = ?", form.Email).First(&user).Error; err != nil {
		return redirectWithError(c, "/login", "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)); err != nil {
		return redirectWithError(c, "/login", "Invalid email or password")
	}

	sess, err := middleware.Store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Session error"})
	}
	middleware.SetSessionUser(sess, user)
	utils.FlashSuccess(sess, "Welcome back, "+user.Name+"!")
	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Session error"})
	}

	if user.Role == "admin" {
		return c.Redirect("/admin")
	}
	return c.Redirect("/")
}

func RegisterPage(c *fiber.Ctx) error {
	if middleware.CurrentUser(c) != nil {
		return c.Redirect("/")
	}
	return viewModel(c, "Register", fiber.Map{})
}

func Register(c *fiber.Ctx) error {
	var form RegisterForm
	if err := c.BodyParser(&form); err != nil {
		return redirectWithError(c, "/register", "Invalid form submission")
	}
	if err := validate.Struct(form); err != nil {
		return redirectWithError(c, "/register", "Please fill in all required fields")
	}

	// Validation failures reject before any write.
	if form.Password != form.ConfirmPassword {
		return redirectWithError(c, "/register", "Passwords do not match")
	}

	var existing int64
	database.DB.Model(&models.User{}).Where("email = ?", form.Email).Count(&existing)
	if existing > 0 {
		return redirectWithError(c, "/register", "Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := models.User{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Password: string(hashedPassword),
		Role:     "user",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Printf("🔥 Registration error: %v", err)
		return redirectWithError(c, "/register", "Registration failed. Please try again.")
	}

	return redirectWithSuccess(c, "/login", "Registration successful! Please login.")
}

func Logout(c *fiber.Ctx) error {
	if sess, err := middleware.Store.Get(c); err == nil {
		sess.Destroy()
	}
	return c.Redirect("/")
}

func Profile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	reservations, err := services.MyReservations(user.ID, user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return viewModel(c, "My Profile", fiber.Map{"reservations": reservations})
}
