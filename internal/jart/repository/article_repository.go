package repository

import (
	"context"

	"github.com/jimyag/jart/internal/jart/repository/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArticleRepository 文章仓库接口
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	GetByID(ctx context.Context, id string) (*model.Article, error)
	List(ctx context.Context) ([]*model.Article, error)
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id string) error
	TagIDs(ctx context.Context, articleID string) ([]string, error)
	SyncTags(ctx context.Context, articleID string, tagIDs []string) (*SyncResult, error)
	DetachTags(ctx context.Context, articleID string) (int64, error)
}

// SyncResult 记录一次 SyncTags 新增和移除的标签 ID
type SyncResult struct {
	Attached []string
	Detached []string
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository 创建文章仓库
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func preloadTags(db *gorm.DB) *gorm.DB {
	return db.Order("tags.title ASC")
}

// Create 创建文章，不写入关联
func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(article).Error
}

// GetByID 根据 ID 获取文章及其标签
func (r *articleRepository) GetByID(ctx context.Context, id string) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).
		Preload("Tags", preloadTags).
		Where("id = ?", id).
		First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// List 列出全部文章及其标签
func (r *articleRepository) List(ctx context.Context) ([]*model.Article, error) {
	var articles []*model.Article
	if err := r.db.WithContext(ctx).
		Preload("Tags", preloadTags).
		Order("created_at ASC, id ASC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Update 更新文章的标题和正文，文章不存在时返回 gorm.ErrRecordNotFound
func (r *articleRepository) Update(ctx context.Context, article *model.Article) error {
	result := r.db.WithContext(ctx).
		Model(article).
		Select("title", "body", "updated_at").
		Updates(article)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 删除文章行，文章不存在时返回 gorm.ErrRecordNotFound
// 不处理关联，调用方需要先 DetachTags
func (r *articleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Article{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TagIDs 返回文章当前关联的标签 ID
func (r *articleRepository) TagIDs(ctx context.Context, articleID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&model.ArticleTag{}).
		Where("article_id = ?", articleID).
		Order("tag_id ASC").
		Pluck("tag_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// SyncTags 把文章的关联替换为 tagIDs：删除不在集合中的，插入新增的，其余保持不动
// 本身不是原子的，需要原子性时在 Transaction 中调用
func (r *articleRepository) SyncTags(ctx context.Context, articleID string, tagIDs []string) (*SyncResult, error) {
	current, err := r.TagIDs(ctx, articleID)
	if err != nil {
		return nil, err
	}

	want := make(map[string]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		want[id] = struct{}{}
	}
	have := make(map[string]struct{}, len(current))
	for _, id := range current {
		have[id] = struct{}{}
	}

	result := &SyncResult{}
	for _, id := range current {
		if _, ok := want[id]; !ok {
			result.Detached = append(result.Detached, id)
		}
	}
	for _, id := range tagIDs {
		if _, ok := have[id]; ok {
			continue
		}
		have[id] = struct{}{}
		result.Attached = append(result.Attached, id)
	}

	db := r.db.WithContext(ctx)
	if len(result.Detached) > 0 {
		if err := db.
			Where("article_id = ? AND tag_id IN ?", articleID, result.Detached).
			Delete(&model.ArticleTag{}).Error; err != nil {
			return nil, err
		}
	}
	if len(result.Attached) > 0 {
		rows := make([]model.ArticleTag, 0, len(result.Attached))
		for _, id := range result.Attached {
			rows = append(rows, model.ArticleTag{ArticleID: articleID, TagID: id})
		}
		if err := db.Create(&rows).Error; err != nil {
			return nil, err
		}
	}
	return result, nil
}

// DetachTags 删除文章的全部关联，标签本身保留
func (r *articleRepository) DetachTags(ctx context.Context, articleID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Delete(&model.ArticleTag{})
	return result.RowsAffected, result.Error
}
