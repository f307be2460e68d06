package services

import (
	"fmt"
	"testing"

	"github.com/inklet-dev/inklet/pkg/internal/database"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatePostSplitsPages(t *testing.T) {
	setupDatabase(t)
	viper.Set("feed.page_size", 3)
	t.Cleanup(func() { viper.Set("feed.page_size", 0) })

	author := mustAccount(t, "leo")
	for i := 0; i < 4; i++ {
		mustPost(t, author, fmt.Sprintf("Post number %d", i), nil)
	}

	first, err := PaginatePost(database.C, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 4, first.Count)
	assert.Equal(t, 2, first.Pages)
	assert.Len(t, first.Data, 3)

	second, err := PaginatePost(database.C, 2)
	require.NoError(t, err)
	assert.Len(t, second.Data, 1)
}

func TestPaginatePostClampsOutOfRange(t *testing.T) {
	setupDatabase(t)
	viper.Set("feed.page_size", 3)
	t.Cleanup(func() { viper.Set("feed.page_size", 0) })

	author := mustAccount(t, "leo")
	for i := 0; i < 4; i++ {
		mustPost(t, author, fmt.Sprintf("Post number %d", i), nil)
	}

	past, err := PaginatePost(database.C, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, past.Page)
	assert.Len(t, past.Data, 1)

	below, err := PaginatePost(database.C, -5)
	require.NoError(t, err)
	assert.Equal(t, 1, below.Page)
	assert.Len(t, below.Data, 3)
}

func TestPaginatePostEmpty(t *testing.T) {
	setupDatabase(t)

	feed, err := PaginatePost(database.C, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, feed.Count)
	assert.Equal(t, 1, feed.Page)
	assert.Equal(t, 1, feed.Pages)
	assert.Empty(t, feed.Data)
}

func TestHomeFeedCacheRoundTrip(t *testing.T) {
	FlushHomeFeed()

	payload := []byte(`{"count":1}`)
	SetHomeFeedCache(1, "session-a", payload)

	got, hit := GetHomeFeedCache(1, "session-a")
	require.True(t, hit)
	assert.Equal(t, payload, got)

	// Another session never sees this snapshot.
	_, hit = GetHomeFeedCache(1, "session-b")
	assert.False(t, hit)

	FlushHomeFeed()
	_, hit = GetHomeFeedCache(1, "session-a")
	assert.False(t, hit)
}
