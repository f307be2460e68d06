package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App) {
	app.Get("/", getHomeFeed)
	app.Get("/group/:groupSlug", getGroupFeed)
	app.Get("/profile/:accountName", getProfileFeed)
	app.Get("/follow", getFollowFeed)

	app.Get("/posts/:postId", getPostDetail)
	app.Get("/create", getPostForm)
	app.Post("/create", createPost)
	app.Get("/posts/:postId/edit", getPostEditForm)
	app.Post("/posts/:postId/edit", editPost)
	app.Post("/posts/:postId/delete", deletePost)
	app.Post("/posts/:postId/comment", createComment)

	app.Get("/profile/:accountName/follow", followAccount)
	app.Get("/profile/:accountName/unfollow", unfollowAccount)

	auth := app.Group("/auth")
	{
		auth.Post("/login", doLogin)
	}
}
