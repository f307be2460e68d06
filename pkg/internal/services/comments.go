package services

import (
	"fmt"

	"github.com/inklet-dev/inklet/pkg/internal/database"
	"github.com/inklet-dev/inklet/pkg/internal/models"
)

func CountComment(postID uint) int64 {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func ListComment(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := database.C.
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

func NewComment(user models.Account, post models.Post, text string) (models.Comment, error) {
	if len(text) == 0 {
		return models.Comment{}, fmt.Errorf("comment text cannot be empty")
	}

	comment := models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: user.ID,
		Author:   user,
	}

	if err := database.C.Create(&comment).Error; err != nil {
		return comment, err
	}
	return comment, nil
}
