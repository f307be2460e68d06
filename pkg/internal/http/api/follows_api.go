package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/inklet-dev/inklet/pkg/internal/http/exts"
	"github.com/inklet-dev/inklet/pkg/internal/models"
	"github.com/inklet-dev/inklet/pkg/internal/services"
)

func followAccount(c *fiber.Ctx) error {
	user, authenticated := c.Locals("user").(models.Account)
	if !authenticated {
		return exts.RedirectToLogin(c)
	}

	author, err := services.GetAccount(c.Params("accountName"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Duplicate and self follows are a no-op inside.
	if _, err := services.FollowAccount(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/profile/%s", author.Name), fiber.StatusFound)
}

func unfollowAccount(c *fiber.Ctx) error {
	user, authenticated := c.Locals("user").(models.Account)
	if !authenticated {
		return exts.RedirectToLogin(c)
	}

	author, err := services.GetAccount(c.Params("accountName"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnfollowAccount(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/profile/%s", author.Name), fiber.StatusFound)
}
