package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/inklet-dev/inklet/pkg/internal/database"
	"github.com/inklet-dev/inklet/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDatabase(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	source, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.C = source
	require.NoError(t, database.RunMigration(source))
}

func mustAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account, err := NewAccount(name, name, name+"@example.com", "qwerty123")
	require.NoError(t, err)
	return account
}

func mustPost(t *testing.T, author models.Account, text string, groupID *uint) models.Post {
	t.Helper()

	item, err := NewPost(author, models.Post{Text: text, GroupID: groupID})
	require.NoError(t, err)
	return item
}
