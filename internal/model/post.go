package model

import "time"

// Post 内容主体。author 在创建时由会话用户写入，之后不可变；
// group 引用可空，删除 group 时置空而非级联删除。
type Post struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	AuthorID  string    `gorm:"type:varchar(36);index:idx_post_author;not null"`
	Author    *User     `gorm:"foreignKey:AuthorID"`
	GroupID   *string   `gorm:"type:varchar(36);index:idx_post_group"`
	Group     *Group    `gorm:"foreignKey:GroupID"`
	Text      string    `gorm:"type:text;not null"`
	Image     *string   `gorm:"type:varchar(255)"` // object key in external storage
	CreatedAt time.Time `gorm:"index:idx_post_created"`
	UpdatedAt time.Time
}

func (Post) TableName() string { return "posts" }
