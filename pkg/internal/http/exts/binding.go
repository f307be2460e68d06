package exts

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

func BindAndValidate(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else if err := validation.Struct(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}

// RedirectToLogin sends an anonymous visitor to the login flow, keeping
// the originally requested path in the next parameter.
func RedirectToLogin(c *fiber.Ctx) error {
	return c.Redirect(
		fmt.Sprintf("/auth/login?next=%s", url.QueryEscape(c.Path())),
		fiber.StatusFound,
	)
}
