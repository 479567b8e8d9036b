package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jart/internal/jart/entity"
	"github.com/jimyag/jart/pkg/ginx"
	"github.com/rs/zerolog"
)

// ArticleServiceInterface 定义文章服务的接口
// 调用时传入 ctx.Request.Context()，*gin.Context 在请求结束后会被 gin 复用
type ArticleServiceInterface interface {
	ListArticles(ctx context.Context) ([]entity.Article, error)
	DescribeArticle(ctx context.Context, articleID string) (*entity.Article, error)
	CreateArticle(ctx context.Context, req *entity.CreateArticleRequest) (*entity.Article, error)
	UpdateArticle(ctx context.Context, req *entity.UpdateArticleRequest) (*entity.Article, error)
	DeleteArticle(ctx context.Context, articleID string) error
}

type Article struct {
	articleService ArticleServiceInterface
}

func NewArticle(articleService ArticleServiceInterface) *Article {
	return &Article{
		articleService: articleService,
	}
}

func (a *Article) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/articles", ginx.Adapt3(a.ListArticles))
	router.POST("/articles", ginx.Adapt5(a.CreateArticle, ginx.WithStatus(http.StatusCreated)))
	router.GET("/articles/:id", ginx.Adapt5(a.DescribeArticle))
	router.PUT("/articles/:id", ginx.Adapt5(a.UpdateArticle))
	router.PATCH("/articles/:id", ginx.Adapt5(a.UpdateArticle))
	router.DELETE("/articles/:id", ginx.Adapt5(a.DeleteArticle, ginx.WithStatus(http.StatusNoContent)))
}

func (a *Article) ListArticles(ctx *gin.Context) ([]entity.Article, error) {
	reqCtx := ctx.Request.Context()
	logger := zerolog.Ctx(reqCtx)
	logger.Info().Msg("ListArticles called")

	articles, err := a.articleService.ListArticles(reqCtx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to list articles")
		return nil, err
	}

	logger.Info().
		Int("count", len(articles)).
		Msg("Articles listed successfully")

	return articles, nil
}

func (a *Article) DescribeArticle(ctx *gin.Context, req *entity.DescribeArticleRequest) (*entity.Article, error) {
	reqCtx := ctx.Request.Context()
	logger := zerolog.Ctx(reqCtx)
	logger.Info().
		Str("article_id", req.ArticleID).
		Msg("DescribeArticle called")

	article, err := a.articleService.DescribeArticle(reqCtx, req.ArticleID)
	if err != nil {
		logger.Error().
			Err(err).
			Str("article_id", req.ArticleID).
			Msg("Failed to describe article")
		return nil, err
	}
	return article, nil
}

func (a *Article) CreateArticle(ctx *gin.Context, req *entity.CreateArticleRequest) (*entity.Article, error) {
	reqCtx := ctx.Request.Context()
	logger := zerolog.Ctx(reqCtx)
	logger.Info().
		Str("title", req.Title).
		Msg("CreateArticle called")

	article, err := a.articleService.CreateArticle(reqCtx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to create article")
		return nil, err
	}

	logger.Info().
		Str("article_id", article.ID).
		Int("tags", len(article.Tags)).
		Msg("Article created successfully")

	return article, nil
}

func (a *Article) UpdateArticle(ctx *gin.Context, req *entity.UpdateArticleRequest) (*entity.Article, error) {
	reqCtx := ctx.Request.Context()
	logger := zerolog.Ctx(reqCtx)
	logger.Info().
		Str("article_id", req.ArticleID).
		Bool("tags_present", req.Tags != nil).
		Msg("UpdateArticle called")

	article, err := a.articleService.UpdateArticle(reqCtx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("article_id", req.ArticleID).
			Msg("Failed to update article")
		return nil, err
	}

	logger.Info().
		Str("article_id", article.ID).
		Int("tags", len(article.Tags)).
		Msg("Article updated successfully")

	return article, nil
}

func (a *Article) DeleteArticle(ctx *gin.Context, req *entity.DeleteArticleRequest) (*entity.DeleteArticleResponse, error) {
	reqCtx := ctx.Request.Context()
	logger := zerolog.Ctx(reqCtx)
	logger.Info().
		Str("article_id", req.ArticleID).
		Msg("DeleteArticle called")

	err := a.articleService.DeleteArticle(reqCtx, req.ArticleID)
	if err != nil {
		logger.Error().
			Err(err).
			Str("article_id", req.ArticleID).
			Msg("Failed to delete article")
		return nil, err
	}

	logger.Info().
		Str("article_id", req.ArticleID).
		Msg("Article deleted successfully")

	return &entity.DeleteArticleResponse{
		Message: entity.ArticleRemovedMessage,
	}, nil
}
