package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/inklet-dev/inklet/pkg/internal/cache"
	"github.com/inklet-dev/inklet/pkg/internal/models"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type FeedPage struct {
	Count int64         `json:"count"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
	Data  []models.Post `json:"data"`
}

func FeedPageSize() int {
	size := viper.GetInt("feed.page_size")
	if size <= 0 {
		size = 10
	}
	return size
}

// PaginatePost assembles one feed page, newest first. Out-of-range page
// numbers clamp to the nearest valid page instead of erroring.
func PaginatePost(tx *gorm.DB, page int) (FeedPage, error) {
	size := FeedPageSize()

	count, err := CountPost(tx.Session(&gorm.Session{}))
	if err != nil {
		return FeedPage{}, err
	}

	pages := int(math.Ceil(float64(count) / float64(size)))
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	} else if page > pages {
		page = pages
	}

	items, err := ListPost(tx, size, (page-1)*size, "published_at DESC")
	if err != nil {
		return FeedPage{}, err
	}

	return FeedPage{
		Count: count,
		Page:  page,
		Pages: pages,
		Data:  items,
	}, nil
}

const homeFeedCacheTag = "index-page"

func homeFeedCacheKey(page int, session string) string {
	return fmt.Sprintf("%s#%d#%s", homeFeedCacheTag, page, session)
}

func HomeFeedCacheTTL() time.Duration {
	ttl := viper.GetDuration("feed.cache_ttl")
	if ttl <= 0 {
		ttl = 20 * time.Second
	}
	return ttl
}

// GetHomeFeedCache returns the cached serialized page for the given page
// number and session cookie, if still fresh.
func GetHomeFeedCache(page int, session string) ([]byte, bool) {
	cacheManager := cache.New[[]byte](localCache.S)
	data, err := cacheManager.Get(context.Background(), homeFeedCacheKey(page, session))
	if err != nil {
		return nil, false
	}
	return data, true
}

func SetHomeFeedCache(page int, session string, payload []byte) {
	cacheManager := cache.New[[]byte](localCache.S)
	_ = cacheManager.Set(
		context.Background(),
		homeFeedCacheKey(page, session),
		payload,
		store.WithExpiration(HomeFeedCacheTTL()),
		store.WithTags([]string{homeFeedCacheTag}),
	)

	// Ristretto applies writes asynchronously; wait so the snapshot is
	// visible to the next request.
	localCache.R.Wait()
}

// FlushHomeFeed drops every cached home feed snapshot regardless of
// session or page.
func FlushHomeFeed() {
	cacheManager := cache.New[[]byte](localCache.S)
	_ = cacheManager.Invalidate(context.Background(), store.WithInvalidateTags([]string{homeFeedCacheTag}))
	localCache.R.Wait()
}
