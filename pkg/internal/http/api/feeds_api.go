package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inklet-dev/inklet/pkg/internal/database"
	"github.com/inklet-dev/inklet/pkg/internal/http/exts"
	"github.com/inklet-dev/inklet/pkg/internal/models"
	"github.com/inklet-dev/inklet/pkg/internal/services"
	jsoniter "github.com/json-iterator/go"
)

// getHomeFeed serves the cached landing page. The cache key varies on
// the session cookie, so each session keeps its own snapshot until the
// TTL runs out; writes do not invalidate it.
func getHomeFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	session := c.Cookies(services.AuthCookieName)

	if payload, hit := services.GetHomeFeedCache(page, session); hit {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Send(payload)
	}

	feed, err := services.PaginatePost(database.C, page)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	payload, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(feed)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	services.SetHomeFeedCache(page, session, payload)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(payload)
}

func getGroupFeed(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("groupSlug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	feed, err := services.PaginatePost(
		services.FilterPostWithGroup(database.C, group.ID),
		c.QueryInt("page", 1),
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"group": group,
		"feed":  feed,
	})
}

func getProfileFeed(c *fiber.Ctx) error {
	author, err := services.GetAccount(c.Params("accountName"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	feed, err := services.PaginatePost(
		services.FilterPostWithAuthor(database.C, author.ID),
		c.QueryInt("page", 1),
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Following is false for anonymous visitors and for the author looking
	// at their own profile.
	var following bool
	if user, authenticated := c.Locals("user").(models.Account); authenticated && user.ID != author.ID {
		following = services.IsFollowing(user, author)
	}

	return c.JSON(fiber.Map{
		"author":    author,
		"following": following,
		"feed":      feed,
	})
}

func getFollowFeed(c *fiber.Ctx) error {
	user, authenticated := c.Locals("user").(models.Account)
	if !authenticated {
		return exts.RedirectToLogin(c)
	}

	feed, err := services.PaginatePost(
		services.FilterPostWithFollowed(database.C, user.ID),
		c.QueryInt("page", 1),
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(feed)
}
