package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jimyag/jart/internal/jart/config"
	"github.com/jimyag/jart/internal/jart/entity"
	"github.com/jimyag/jart/internal/jart/repository"
	"github.com/stretchr/testify/require"
)

// TestServices 包含测试所需的服务和依赖
type TestServices struct {
	Repo           *repository.Repository
	ArticleService *ArticleService
	TagService     *TagService
}

// setupTestServices 为每个测试用例创建独立的数据库和服务实例
func setupTestServices(t *testing.T, tagCfg config.TagConfig) *TestServices {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := repository.New(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(tmpDir, "test.db"),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = repo.Close()
		_ = os.RemoveAll(tmpDir)
	})

	return &TestServices{
		Repo:           repo,
		ArticleService: NewArticleService(repo, NewTagParser(tagCfg)),
		TagService:     NewTagService(repo),
	}
}

func strPtr(s string) *string { return &s }

func titlesOf(tags []entity.Tag) []string {
	titles := make([]string, 0, len(tags))
	for _, tag := range tags {
		titles = append(titles, tag.Title)
	}
	return titles
}

func mustCreate(t *testing.T, svc *ArticleService, title string, tags *string) *entity.Article {
	t.Helper()
	article, err := svc.CreateArticle(context.Background(), &entity.CreateArticleRequest{
		Title: title,
		Body:  title + " body",
		Tags:  tags,
	})
	require.NoError(t, err)
	return article
}
