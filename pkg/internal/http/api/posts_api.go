package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/inklet-dev/inklet/pkg/internal/database"
	"github.com/inklet-dev/inklet/pkg/internal/http/exts"
	"github.com/inklet-dev/inklet/pkg/internal/models"
	"github.com/inklet-dev/inklet/pkg/internal/services"
)

func getPostDetail(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	comments, err := services.ListComment(item.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"post":     item,
		"comments": comments,
	})
}

type postForm struct {
	Text  string `json:"text" form:"text" validate:"required"`
	Group *uint  `json:"group" form:"group"`
}

// getPostForm backs the blank creation form with the selectable groups.
func getPostForm(c *fiber.Ctx) error {
	if _, authenticated := c.Locals("user").(models.Account); !authenticated {
		return exts.RedirectToLogin(c)
	}

	groups, err := services.ListGroup(100, 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"groups": groups,
	})
}

func getPostEditForm(c *fiber.Ctx) error {
	user, authenticated := c.Locals("user").(models.Account)
	if !authenticated {
		return exts.RedirectToLogin(c)
	}

	id, _ := c.ParamsInt("postId", 0)
	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
	}

	groups, err := services.ListGroup(100, 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"post":   item,
		"groups": groups,
	})
}

func createPost(c *fiber.Ctx) error {
	user, authenticated := c.Locals("user").(models.Account)
	if !authenticated {
		return exts.RedirectToLogin(c)
	}

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Post{
		Text: data.Text,
	}

	if data.Group != nil {
		group, err := services.GetGroupWithID(*data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unable to find group: %v", err))
		}
		item.GroupID = &group.ID
	}

	if header, err := c.FormFile("image"); err == nil && header != nil {
		path, meta, err := services.SaveAttachment(header)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		item.Image = &path
		item.Attachment = meta
	}

	if _, err := services.NewPost(user, item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/profile/%s", user.Name), fiber.StatusFound)
}

func editPost(c *fiber.Ctx) error {
	user, authenticated := c.Locals("user").(models.Account)
	if !authenticated {
		return exts.RedirectToLogin(c)
	}

	id, _ := c.ParamsInt("postId", 0)
	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	// Non-authors land back on the detail view with nothing applied.
	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
	}

	var data postForm
	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var groupID *uint
	if data.Group != nil {
		group, err := services.GetGroupWithID(*data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unable to find group: %v", err))
		}
		groupID = &group.ID
	}

	var image *string
	if header, err := c.FormFile("image"); err == nil && header != nil {
		path, meta, err := services.SaveAttachment(header)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		image = &path
		item.Attachment = meta
	}

	if _, err := services.EditPost(item, data.Text, groupID, image); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
}

func deletePost(c *fiber.Ctx) error {
	user, authenticated := c.Locals("user").(models.Account)
	if !authenticated {
		return exts.RedirectToLogin(c)
	}

	id, _ := c.ParamsInt("postId", 0)
	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if item.AuthorID != user.ID {
		return c.Redirect(fmt.Sprintf("/posts/%d", item.ID), fiber.StatusFound)
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Redirect(fmt.Sprintf("/profile/%s", user.Name), fiber.StatusFound)
}
