package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jimyag/jart/internal/jart/entity"
	"github.com/jimyag/jart/internal/jart/repository"
	"github.com/jimyag/jart/internal/jart/repository/model"
	"github.com/jimyag/jart/pkg/apierror"
	"github.com/jimyag/jart/pkg/idgen"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ArticleService 文章服务
type ArticleService struct {
	repo      *repository.Repository
	idGen     *idgen.Generator
	tagParser TagParser
}

// NewArticleService 创建文章服务
func NewArticleService(repo *repository.Repository, tagParser TagParser) *ArticleService {
	return &ArticleService{
		repo:      repo,
		idGen:     idgen.DefaultGenerator(),
		tagParser: tagParser,
	}
}

// ListArticles 列出全部文章及其标签
func (s *ArticleService) ListArticles(ctx context.Context) ([]entity.Article, error) {
	logger := zerolog.Ctx(ctx)

	models, err := s.repo.Articles().List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list articles")
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to list articles", err)
	}

	articles := make([]entity.Article, 0, len(models))
	for _, m := range models {
		article, err := articleModelToEntity(m)
		if err != nil {
			return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to convert article", err)
		}
		articles = append(articles, *article)
	}
	return articles, nil
}

// DescribeArticle 获取单篇文章
func (s *ArticleService) DescribeArticle(ctx context.Context, articleID string) (*entity.Article, error) {
	m, err := s.getArticle(ctx, s.repo, articleID)
	if err != nil {
		return nil, err
	}

	article, err := articleModelToEntity(m)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to convert article", err)
	}
	return article, nil
}

// CreateArticle 创建文章并关联标签，返回重新读取的文章
func (s *ArticleService) CreateArticle(ctx context.Context, req *entity.CreateArticleRequest) (*entity.Article, error) {
	logger := zerolog.Ctx(ctx)

	articleID, err := s.idGen.GenerateArticleID()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate article ID")
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to generate article ID", err)
	}

	article := &model.Article{
		ID:    articleID,
		Title: req.Title,
		Body:  req.Body,
	}

	var syncResult *repository.SyncResult
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Articles().Create(ctx, article); err != nil {
			return fmt.Errorf("create article: %w", err)
		}
		if req.Tags == nil {
			return nil
		}
		var err error
		syncResult, err = s.associateTags(ctx, tx, article.ID, *req.Tags)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Str("article_id", articleID).Msg("Failed to create article")
		return nil, internalError("Failed to create article", err)
	}

	logSync(logger, articleID, syncResult).Msg("Article created successfully")

	return s.DescribeArticle(ctx, articleID)
}

// UpdateArticle 更新文章，请求中带 tags 时重新同步标签
func (s *ArticleService) UpdateArticle(ctx context.Context, req *entity.UpdateArticleRequest) (*entity.Article, error) {
	logger := zerolog.Ctx(ctx)

	var syncResult *repository.SyncResult
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		article, err := s.getArticle(ctx, tx, req.ArticleID)
		if err != nil {
			return err
		}

		if req.Title != nil {
			article.Title = *req.Title
		}
		if req.Body != nil {
			article.Body = *req.Body
		}
		if err := tx.Articles().Update(ctx, article); err != nil {
			return fmt.Errorf("update article: %w", err)
		}

		if req.Tags == nil {
			return nil
		}
		syncResult, err = s.associateTags(ctx, tx, article.ID, *req.Tags)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Str("article_id", req.ArticleID).Msg("Failed to update article")
		return nil, internalError("Failed to update article", err)
	}

	logSync(logger, req.ArticleID, syncResult).Msg("Article updated successfully")

	return s.DescribeArticle(ctx, req.ArticleID)
}

// DeleteArticle 先移除文章的全部标签关联，再删除文章
func (s *ArticleService) DeleteArticle(ctx context.Context, articleID string) error {
	logger := zerolog.Ctx(ctx)

	var detached int64
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := s.getArticle(ctx, tx, articleID); err != nil {
			return err
		}

		n, err := tx.Articles().DetachTags(ctx, articleID)
		if err != nil {
			return fmt.Errorf("detach tags: %w", err)
		}
		detached = n

		if err := tx.Articles().Delete(ctx, articleID); err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Str("article_id", articleID).Msg("Failed to delete article")
		return internalError("Failed to delete article", err)
	}

	logger.Info().
		Str("article_id", articleID).
		Int64("detached", detached).
		Msg("Article deleted successfully")
	return nil
}

// AssociateTags 解析 tags 并把文章的标签集合替换为解析结果，返回文章 ID
func (s *ArticleService) AssociateTags(ctx context.Context, articleID, tags string) (string, error) {
	logger := zerolog.Ctx(ctx)

	var syncResult *repository.SyncResult
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := s.getArticle(ctx, tx, articleID); err != nil {
			return err
		}
		var err error
		syncResult, err = s.associateTags(ctx, tx, articleID, tags)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Str("article_id", articleID).Msg("Failed to associate tags")
		return "", internalError("Failed to associate tags", err)
	}

	logSync(logger, articleID, syncResult).Msg("Tags associated successfully")
	return articleID, nil
}

// associateTags 在 tx 中把标题解析为标签（不存在则创建）并同步关联
func (s *ArticleService) associateTags(ctx context.Context, tx *repository.Repository, articleID, tags string) (*repository.SyncResult, error) {
	titles := s.tagParser.Parse(tags)

	tagIDs := make([]string, 0, len(titles))
	for _, title := range titles {
		tag, err := s.resolveTag(ctx, tx, title)
		if err != nil {
			return nil, fmt.Errorf("resolve tag %q: %w", title, err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	result, err := tx.Articles().SyncTags(ctx, articleID, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("sync tags: %w", err)
	}
	return result, nil
}

// resolveTag 按标题查找标签，不存在时创建
func (s *ArticleService) resolveTag(ctx context.Context, tx *repository.Repository, title string) (*model.Tag, error) {
	tag, err := tx.Tags().GetByTitle(ctx, title)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tagID, err := s.idGen.GenerateTagID()
	if err != nil {
		return nil, err
	}
	return tx.Tags().FirstOrCreate(ctx, &model.Tag{ID: tagID, Title: title})
}

func (s *ArticleService) getArticle(ctx context.Context, repo *repository.Repository, articleID string) (*model.Article, error) {
	article, err := repo.Articles().GetByID(ctx, articleID)
	if err == nil {
		return article, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.WrapError(
			apierror.ErrArticleNotFound,
			fmt.Sprintf("article %s does not exist", articleID),
			nil,
		)
	}
	return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to get article", err)
}

// internalError 把 err 包装为 InternalError，已经带类型的错误原样返回
func internalError(message string, err error) error {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return err
	}
	return apierror.WrapError(apierror.ErrInternalError, message, err)
}

func logSync(logger *zerolog.Logger, articleID string, result *repository.SyncResult) *zerolog.Event {
	event := logger.Info().Str("article_id", articleID)
	if result != nil {
		event = event.
			Strs("attached", result.Attached).
			Strs("detached", result.Detached)
	}
	return event
}
