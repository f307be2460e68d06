package services

import (
	"fmt"
	"time"

	"github.com/inklet-dev/inklet/pkg/internal/database"
	"github.com/inklet-dev/inklet/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func FilterPostWithGroup(tx *gorm.DB, groupID uint) *gorm.DB {
	return tx.Where("group_id = ?", groupID)
}

func FilterPostWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

// FilterPostWithFollowed narrows posts down to the authors the given user
// follows.
func FilterPostWithFollowed(tx *gorm.DB, userID uint) *gorm.DB {
	return tx.Where(
		"author_id IN (?)",
		database.C.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID),
	)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func NewPost(user models.Account, item models.Post) (models.Post, error) {
	if len(item.Text) == 0 {
		return item, fmt.Errorf("post text cannot be empty")
	}

	item.AuthorID = user.ID
	item.Author = user
	item.Language = DetectLanguage(item.Text)
	item.PublishedAt = time.Now()

	log.Debug().Str("author", user.Name).Stringer("text", item).Msg("Posting a post...")
	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

// EditPost overwrites text, group and image in place. The author and the
// original publish timestamp are kept as they are.
func EditPost(item models.Post, text string, groupID *uint, image *string) (models.Post, error) {
	if len(text) == 0 {
		return item, fmt.Errorf("post text cannot be empty")
	}

	item.Text = text
	item.Language = DetectLanguage(text)
	item.GroupID = groupID
	item.Group = nil
	if image != nil {
		item.Image = image
	}

	err := database.C.
		Omit("PublishedAt", "AuthorID", "CreatedAt", "Author", "Comments").
		Save(&item).Error

	return item, err
}

func DeletePost(item models.Post) error {
	if err := database.C.Where("post_id = ?", item.ID).Delete(&models.Comment{}).Error; err != nil {
		return fmt.Errorf("unable to delete post comments: %v", err)
	}
	return database.C.Delete(&item).Error
}
