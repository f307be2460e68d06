package services

import (
	"errors"
	"fmt"

	"github.com/inklet-dev/inklet/pkg/internal/database"
	"github.com/inklet-dev/inklet/pkg/internal/models"
	"gorm.io/gorm"
)

func GetFollow(user models.Account, author models.Account) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.Where("user_id = ? AND author_id = ?", user.ID, author.ID).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow edge: %v", err)
	}
	return &follow, nil
}

func IsFollowing(user models.Account, author models.Account) bool {
	follow, err := GetFollow(user, author)
	return err == nil && follow != nil
}

// FollowAccount creates the edge unless it already exists or the user is
// the author themselves. Both cases are a no-op, not an error.
func FollowAccount(user models.Account, author models.Account) (models.Follow, error) {
	var follow models.Follow
	if user.ID == author.ID {
		return follow, nil
	}

	if existing, err := GetFollow(user, author); err != nil {
		return follow, err
	} else if existing != nil {
		return *existing, nil
	}

	follow = models.Follow{
		UserID:   user.ID,
		AuthorID: author.ID,
	}

	err := database.C.Save(&follow).Error
	return follow, err
}

// UnfollowAccount deletes the edge if present; an absent edge is a no-op.
// The delete is permanent: a soft-deleted row would still occupy the
// unique (user, author) index and block a later re-follow.
func UnfollowAccount(user models.Account, author models.Account) error {
	follow, err := GetFollow(user, author)
	if err != nil {
		return err
	}
	if follow == nil {
		return nil
	}

	return database.C.Unscoped().Delete(follow).Error
}
