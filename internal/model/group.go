package model

import "time"

// Group is a topic posts can optionally belong to. The slug is the stable
// URL identifier and never changes after creation.
type Group struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	Slug        string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (Group) TableName() string { return "groups" }
