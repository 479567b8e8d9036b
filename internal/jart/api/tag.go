package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jart/internal/jart/entity"
	"github.com/jimyag/jart/pkg/ginx"
	"github.com/rs/zerolog"
)

// TagServiceInterface 定义标签服务的接口
type TagServiceInterface interface {
	ListTags(ctx context.Context) ([]entity.Tag, error)
}

type Tag struct {
	tagService TagServiceInterface
}

func NewTag(tagService TagServiceInterface) *Tag {
	return &Tag{
		tagService: tagService,
	}
}

func (t *Tag) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tags", ginx.Adapt3(t.ListTags))
}

func (t *Tag) ListTags(ctx *gin.Context) ([]entity.Tag, error) {
	reqCtx := ctx.Request.Context()
	logger := zerolog.Ctx(reqCtx)
	logger.Info().Msg("ListTags called")

	tags, err := t.tagService.ListTags(reqCtx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to list tags")
		return nil, err
	}
	return tags, nil
}
