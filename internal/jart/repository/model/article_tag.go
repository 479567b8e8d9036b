package model

import (
	"time"
)

// ArticleTag 文章与标签的关联表，只有外键对
type ArticleTag struct {
	ArticleID string    `gorm:"primaryKey;type:text;column:article_id" json:"article_id"`
	TagID     string    `gorm:"primaryKey;type:text;index:idx_article_tags_tag_id;column:tag_id" json:"tag_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName 指定表名
func (ArticleTag) TableName() string {
	return "article_tags"
}
