package service

import (
	"context"
	"strings"

	"github.com/jimyag/jart/internal/jart/config"
	"github.com/jimyag/jart/internal/jart/entity"
	"github.com/jimyag/jart/internal/jart/repository"
	"github.com/jimyag/jart/pkg/apierror"
	"github.com/rs/zerolog"
)

// TagParser 把请求中的标签字符串拆成标签标题
type TagParser struct {
	Separator string
	KeepBlank bool
}

// NewTagParser 根据配置创建 TagParser
func NewTagParser(cfg config.TagConfig) TagParser {
	return TagParser{
		Separator: cfg.Separator,
		KeepBlank: cfg.KeepBlank,
	}
}

// Parse 按分隔符拆分，去掉首尾空白并去重，保留第一次出现的顺序
// KeepBlank 为 false 时跳过空标题
func (p TagParser) Parse(raw string) []string {
	sep := p.Separator
	if sep == "" {
		sep = ","
	}

	parts := strings.Split(raw, sep)
	titles := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		title := strings.TrimSpace(part)
		if title == "" && !p.KeepBlank {
			continue
		}
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		titles = append(titles, title)
	}
	return titles
}

// TagService 标签服务
type TagService struct {
	repo *repository.Repository
}

// NewTagService 创建标签服务
func NewTagService(repo *repository.Repository) *TagService {
	return &TagService{
		repo: repo,
	}
}

// ListTags 列出全部标签
func (s *TagService) ListTags(ctx context.Context) ([]entity.Tag, error) {
	logger := zerolog.Ctx(ctx)

	models, err := s.repo.Tags().List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list tags")
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to list tags", err)
	}

	tags := make([]entity.Tag, 0, len(models))
	for _, m := range models {
		tag, err := tagModelToEntity(m)
		if err != nil {
			return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to convert tag", err)
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}
