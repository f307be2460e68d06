package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/inklet-dev/inklet/pkg/internal/database"
	"github.com/inklet-dev/inklet/pkg/internal/http/exts"
	"github.com/inklet-dev/inklet/pkg/internal/models"
	"github.com/inklet-dev/inklet/pkg/internal/services"
	"github.com/rs/zerolog/log"
)

// createComment lands back on the detail view whether or not the
// submission was valid; invalid text just persists nothing.
func createComment(c *fiber.Ctx) error {
	user, authenticated := c.Locals("user").(models.Account)
	if !authenticated {
		return exts.RedirectToLogin(c)
	}

	id, _ := c.ParamsInt("postId", 0)
	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	var data struct {
		Text string `json:"text" form:"text" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err == nil {
		if _, err := services.NewComment(user, item, data.Text); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	} else {
		log.Debug().Err(err).Uint("post", item.ID).Msg("Discarded an invalid comment submission...")
	}

	return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
}
