package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	BaseModel

	Text     string  `json:"text"`
	Language string  `json:"language"`
	Image    *string `json:"image"`

	// Attachment keeps the upload metadata of the image (original file
	// name, size, mime type).
	Attachment datatypes.JSONMap `json:"attachment"`

	PublishedAt time.Time `json:"published_at"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group" gorm:"constraint:OnDelete:SET NULL"`

	Comments []Comment `json:"comments" gorm:"constraint:OnDelete:CASCADE"`
}

const PostDisplayTextThreshold = 15

// String is used in logs and admin listings, the full text never lands
// there.
func (v Post) String() string {
	if runes := []rune(v.Text); len(runes) > PostDisplayTextThreshold {
		return string(runes[:PostDisplayTextThreshold])
	}
	return v.Text
}
