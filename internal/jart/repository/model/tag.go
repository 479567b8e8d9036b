package model

import (
	"time"
)

// Tag 标签表，标题全局唯一
type Tag struct {
	ID        string    `gorm:"primaryKey;type:text;column:id" json:"id"` // tag-{递增 ID}
	Title     string    `gorm:"type:text;not null;uniqueIndex:idx_tags_title;column:title" json:"title"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at" json:"updated_at"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}
