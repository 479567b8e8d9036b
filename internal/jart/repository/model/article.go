package model

import (
	"time"
)

// Article 文章表
type Article struct {
	ID        string    `gorm:"primaryKey;type:text;column:id" json:"id"` // art-{递增 ID}
	Title     string    `gorm:"type:text;not null;column:title" json:"title"`
	Body      string    `gorm:"type:text;not null;default:'';column:body" json:"body"`
	Tags      []Tag     `gorm:"many2many:article_tags;" json:"tags"`
	CreatedAt time.Time `gorm:"not null;index:idx_articles_created_at;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at" json:"updated_at"`
}

// TableName 指定表名
func (Article) TableName() string {
	return "articles"
}
