// Package service 提供业务逻辑层的服务实现
package service

import (
	"cmp"
	"slices"
	"time"

	"github.com/jimyag/jart/internal/jart/entity"
	"github.com/jimyag/jart/internal/jart/repository/model"
	"github.com/jinzhu/copier"
)

// articleModelToEntity 将 model.Article 转换为 entity.Article
func articleModelToEntity(m *model.Article) (*entity.Article, error) {
	e := &entity.Article{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}

	// 处理时间字段
	e.CreatedAt = m.CreatedAt.Format(time.RFC3339)
	e.UpdatedAt = m.UpdatedAt.Format(time.RFC3339)

	if e.Tags == nil {
		e.Tags = []entity.Tag{}
	}
	slices.SortFunc(e.Tags, func(a, b entity.Tag) int {
		return cmp.Compare(a.Title, b.Title)
	})

	return e, nil
}

// tagModelToEntity 将 model.Tag 转换为 entity.Tag
func tagModelToEntity(m *model.Tag) (*entity.Tag, error) {
	e := &entity.Tag{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}
	return e, nil
}
