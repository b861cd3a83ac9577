package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	config "github.com/hostelhub/hostelhub/configs"
	"github.com/hostelhub/hostelhub/models"
	"github.com/hostelhub/hostelhub/utils"
)

var Store *session.Store

func InitSessionStore() {
	Store = session.New(session.Config{
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   config.Config("APP_ENV") == "production",
	})
}

type SessionUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// CurrentUser reads the session without mutating it. Nil means no login.
func CurrentUser(c *fiber.Ctx) *SessionUser {
	sess, err := Store.Get(c)
	if err != nil {
		return nil
	}

	idStr, ok := sess.Get("user_id").(string)
	if !ok || idStr == "" {
		return nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil
	}

	name, _ := sess.Get("user_name").(string)
	email, _ := sess.Get("user_email").(string)
	role, _ := sess.Get("user_role").(string)

	return &SessionUser{ID: id, Name: name, Email: email, Role: role}
}

func SetSessionUser(sess *session.Session, user models.User) {
	sess.Set("user_id", user.ID.String())
	sess.Set("user_name", user.Name)
	sess.Set("user_email", user.Email)
	sess.Set("user_role", user.Role)
}

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) != nil {
			return c.Next()
		}
		if sess, err := Store.Get(c); err == nil {
			utils.FlashError(sess, "Please login to continue")
			sess.Save()
		}
		return c.Redirect("/login")
	}
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user != nil && user.Role == "admin" {
			return c.Next()
		}
		if sess, err := Store.Get(c); err == nil {
			utils.FlashError(sess, "Access denied")
			sess.Save()
		}
		return c.Redirect("/")
	}
}
