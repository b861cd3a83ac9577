package utils

import (
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	flashSuccessKey = "flash_success"
	flashErrorKey   = "flash_error"
)

// Flash messages live in the session for exactly one subsequent view.

func FlashSuccess(sess *session.Session, message string) {
	sess.Set(flashSuccessKey, message)
}

func FlashError(sess *session.Session, message string) {
	sess.Set(flashErrorKey, message)
}

// PopFlashes returns and clears the pending flash messages.
func PopFlashes(sess *session.Session) (success, errMsg string) {
	if v, ok := sess.Get(flashSuccessKey).(string); ok {
		success = v
		sess.Delete(flashSuccessKey)
	}
	if v, ok := sess.Get(flashErrorKey).(string); ok {
		errMsg = v
		sess.Delete(flashErrorKey)
	}
	return success, errMsg
}
