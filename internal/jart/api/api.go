// Package api 注册 HTTP 路由并把请求转交给各个服务
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jart/internal/jart/service"
	"github.com/jimyag/jart/pkg/ginx"
)

type API struct {
	engine *gin.Engine
	server *http.Server

	article *Article
	tag     *Tag
	metrics *Metrics
}

func New(address string, articleService *service.ArticleService, tagService *service.TagService) (*API, error) {
	return newAPI(address, articleService, tagService), nil
}

func newAPI(address string, articleService ArticleServiceInterface, tagService TagServiceInterface) *API {
	engine := gin.New()

	api := &API{
		engine:  engine,
		article: NewArticle(articleService),
		tag:     NewTag(tagService),
		metrics: NewMetrics(),
	}

	engine.Use(gin.Recovery(), ginx.RequestID(), api.metrics.Middleware())

	engine.GET("/healthz", ginx.Adapt2(func(*gin.Context) string { return "ok" }))
	engine.GET("/metrics", gin.WrapH(api.metrics.Handler()))

	group := engine.Group("/api")
	api.article.RegisterRoutes(group)
	api.tag.RegisterRoutes(group)

	api.server = &http.Server{
		Addr:    address,
		Handler: engine,
	}
	return api
}

// Handler 返回处理全部路由的 http.Handler
func (a *API) Handler() http.Handler {
	return a.engine
}

func (a *API) Run(ctx context.Context) error {
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *API) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// Name 实现 grace.Grace 接口
func (a *API) Name() string {
	return "HTTP API"
}
