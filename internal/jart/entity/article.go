// Package entity 定义业务实体
package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jimyag/jart/pkg/apierror"
)

// MaxTitleLength 文章标题的最大字符数
const MaxTitleLength = 255

// ArticleRemovedMessage 删除文章成功后返回的消息
const ArticleRemovedMessage = "Article was removed"

// Article 文章信息
type Article struct {
	ID        string `json:"id"`         // 文章 ID: art-{递增 ID}
	Title     string `json:"title"`      // 标题
	Body      string `json:"body"`       // 正文
	Tags      []Tag  `json:"tags"`       // 关联的标签，按标题排序
	CreatedAt string `json:"created_at"` // 创建时间
	UpdatedAt string `json:"updated_at"` // 更新时间
}

// CreateArticleRequest 创建文章请求
// 只有这里列出的字段会写入文章
type CreateArticleRequest struct {
	Title string  `json:"title" form:"title"`
	Body  string  `json:"body" form:"body"`
	Tags  *string `json:"tags" form:"tags"` // 逗号分隔的标签标题，省略时不关联标签
}

// IsValid 校验创建请求
func (r *CreateArticleRequest) IsValid() error {
	return validateTitle(r.Title)
}

// UpdateArticleRequest 更新文章请求
// 省略的字段保持不变；Tags 为空字符串时清空标签
type UpdateArticleRequest struct {
	ArticleID string  `uri:"id" json:"-" form:"-"`
	Title     *string `json:"title" form:"title"`
	Body      *string `json:"body" form:"body"`
	Tags      *string `json:"tags" form:"tags"`
}

// IsValid 校验更新请求
func (r *UpdateArticleRequest) IsValid() error {
	if r.ArticleID == "" {
		return invalidParameter("article id is required")
	}
	if r.Title != nil {
		return validateTitle(*r.Title)
	}
	return nil
}

// DescribeArticleRequest 查询单篇文章请求
type DescribeArticleRequest struct {
	ArticleID string `uri:"id" json:"-" form:"-"`
}

// IsValid 校验查询请求
func (r *DescribeArticleRequest) IsValid() error {
	if r.ArticleID == "" {
		return invalidParameter("article id is required")
	}
	return nil
}

// DeleteArticleRequest 删除文章请求
type DeleteArticleRequest struct {
	ArticleID string `uri:"id" json:"-" form:"-"`
}

// IsValid 校验删除请求
func (r *DeleteArticleRequest) IsValid() error {
	if r.ArticleID == "" {
		return invalidParameter("article id is required")
	}
	return nil
}

// DeleteArticleResponse 删除文章响应
type DeleteArticleResponse struct {
	Message string `json:"message"`
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return invalidParameter("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return invalidParameter(fmt.Sprintf("title must not exceed %d characters", MaxTitleLength))
	}
	return nil
}

func invalidParameter(message string) error {
	return apierror.NewErrorWithStatus(
		apierror.ErrInvalidParameter.Code,
		message,
		apierror.ErrInvalidParameter.HTTPStatus,
	)
}
