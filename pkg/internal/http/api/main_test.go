package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/inklet-dev/inklet/pkg/internal/database"
	"github.com/inklet-dev/inklet/pkg/internal/http/exts"
	"github.com/inklet-dev/inklet/pkg/internal/models"
	"github.com/inklet-dev/inklet/pkg/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	source, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.C = source
	require.NoError(t, database.RunMigration(source))

	// The cache store is shared process-wide, keep tests isolated.
	services.FlushHomeFeed()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(exts.AuthMiddleware)
	MapAPIs(app)
	return app
}

func mustAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account, err := services.NewAccount(name, name, name+"@example.com", "qwerty123")
	require.NoError(t, err)
	return account
}

func mustPost(t *testing.T, author models.Account, text string, groupID *uint) models.Post {
	t.Helper()

	item, err := services.NewPost(author, models.Post{Text: text, GroupID: groupID})
	require.NoError(t, err)
	return item
}

func authCookie(t *testing.T, account models.Account) *http.Cookie {
	t.Helper()

	token, err := services.MintToken(account)
	require.NoError(t, err)
	return &http.Cookie{Name: services.AuthCookieName, Value: token}
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}
