package service

import (
	"testing"
	"time"

	"github.com/jimyag/jart/internal/jart/repository/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleModelToEntity(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m := &model.Article{
		ID:    "art-1",
		Title: "hello",
		Body:  "world",
		Tags: []model.Tag{
			{ID: "tag-2", Title: "zeta"},
			{ID: "tag-1", Title: "alpha"},
		},
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}

	e, err := articleModelToEntity(m)
	require.NoError(t, err)

	assert.Equal(t, "art-1", e.ID)
	assert.Equal(t, "hello", e.Title)
	assert.Equal(t, "world", e.Body)
	assert.Equal(t, "2024-05-01T10:00:00Z", e.CreatedAt)
	assert.Equal(t, "2024-05-01T11:00:00Z", e.UpdatedAt)
	require.Len(t, e.Tags, 2)
	assert.Equal(t, "tag-1", e.Tags[0].ID)
	assert.Equal(t, "alpha", e.Tags[0].Title)
	assert.Equal(t, "zeta", e.Tags[1].Title)
}

func TestArticleModelToEntity_NoTags(t *testing.T) {
	t.Parallel()

	e, err := articleModelToEntity(&model.Article{ID: "art-1"})
	require.NoError(t, err)
	assert.NotNil(t, e.Tags)
	assert.Empty(t, e.Tags)
}
