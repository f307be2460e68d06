package api

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/inklet-dev/inklet/pkg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	app := testApp(t)
	author := mustAccount(t, "leo")
	reader := mustAccount(t, "mia")
	item := mustPost(t, author, "A post worth commenting", nil)

	req := formRequest(fiber.MethodPost, fmt.Sprintf("/posts/%d/comment", item.ID), url.Values{"text": {"Well said"}})
	req.AddCookie(authCookie(t, reader))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/posts/%d", item.ID), resp.Header.Get("Location"))

	assert.EqualValues(t, 1, services.CountComment(item.ID))

	comments, err := services.ListComment(item.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, reader.ID, comments[0].AuthorID)
}

func TestCreateCommentInvalidStillRedirects(t *testing.T) {
	app := testApp(t)
	author := mustAccount(t, "leo")
	item := mustPost(t, author, "A post worth commenting", nil)

	req := formRequest(fiber.MethodPost, fmt.Sprintf("/posts/%d/comment", item.ID), url.Values{"text": {""}})
	req.AddCookie(authCookie(t, author))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("/posts/%d", item.ID), resp.Header.Get("Location"))

	assert.EqualValues(t, 0, services.CountComment(item.ID))
}

func TestCreateCommentRequiresLogin(t *testing.T) {
	app := testApp(t)
	author := mustAccount(t, "leo")
	item := mustPost(t, author, "A post worth commenting", nil)

	target := fmt.Sprintf("/posts/%d/comment", item.ID)
	resp, err := app.Test(formRequest(fiber.MethodPost, target, url.Values{"text": {"Anon"}}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login?next="+url.QueryEscape(target), resp.Header.Get("Location"))
}

func TestCreateCommentUnknownPost(t *testing.T) {
	app := testApp(t)
	author := mustAccount(t, "leo")

	req := formRequest(fiber.MethodPost, "/posts/999/comment", url.Values{"text": {"Hello?"}})
	req.AddCookie(authCookie(t, author))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
