package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inklet-dev/inklet/pkg/internal/http/exts"
	"github.com/inklet-dev/inklet/pkg/internal/services"
)

func doLogin(c *fiber.Ctx) error {
	var data struct {
		Name     string `json:"name" form:"name" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	user, err := services.CheckLogin(data.Name, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	token, err := services.MintToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     services.AuthCookieName,
		Value:    token,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	// Honor the return path handed over by the login redirect.
	if next := c.Query("next"); len(next) > 0 {
		return c.Redirect(next, fiber.StatusFound)
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"account": user,
	})
}
