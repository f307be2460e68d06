package models

// Follow is the directed "user follows author" edge. The composite unique
// index keeps one edge at most per pair; self-follow is rejected at the
// service level.
type Follow struct {
	BaseModel

	UserID uint    `json:"user_id" gorm:"uniqueIndex:idx_user_author"`
	User   Account `json:"user"`

	AuthorID uint    `json:"author_id" gorm:"uniqueIndex:idx_user_author"`
	Author   Account `json:"author"`
}
