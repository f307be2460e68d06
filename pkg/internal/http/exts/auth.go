package exts

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/inklet-dev/inklet/pkg/internal/services"
)

// AuthMiddleware resolves the session token from the cookie or the
// Authorization header into the acting account. Anonymous requests pass
// through, the gating happens per handler.
func AuthMiddleware(c *fiber.Ctx) error {
	var token string
	if cookie := c.Cookies(services.AuthCookieName); len(cookie) > 0 {
		token = cookie
	} else if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimPrefix(header, "Bearer ")
	}

	if len(token) > 0 {
		if user, err := services.Authenticate(token); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}
