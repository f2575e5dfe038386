package model

import "time"

type Comment struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	PostID    string `gorm:"type:varchar(36);index:idx_comment_post;not null"`
	AuthorID  string `gorm:"type:varchar(36);not null"`
	Author    *User  `gorm:"foreignKey:AuthorID"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
