package repository

import (
	"context"

	"github.com/jimyag/jart/internal/jart/repository/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository 标签仓库接口
type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) error
	GetByTitle(ctx context.Context, title string) (*model.Tag, error)
	FirstOrCreate(ctx context.Context, tag *model.Tag) (*model.Tag, error)
	List(ctx context.Context) ([]*model.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签仓库
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// Create 创建标签
func (r *tagRepository) Create(ctx context.Context, tag *model.Tag) error {
	return r.db.WithContext(ctx).Create(tag).Error
}

// GetByTitle 按标题精确查找标签
func (r *tagRepository) GetByTitle(ctx context.Context, title string) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.WithContext(ctx).
		Where("title = ?", title).
		First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FirstOrCreate 插入 tag，标题已存在时返回已有的标签
// 插入使用 ON CONFLICT DO NOTHING，只有冲突时才重新读取
func (r *tagRepository) FirstOrCreate(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "title"}},
			DoNothing: true,
		}).
		Create(tag)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 1 {
		return tag, nil
	}
	return r.GetByTitle(ctx, tag.Title)
}

// List 按标题列出全部标签
func (r *tagRepository) List(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag
	if err := r.db.WithContext(ctx).
		Order("title ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
