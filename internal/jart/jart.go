// Package jart 提供 jart 服务器的主入口和初始化逻辑
package jart

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jimmicro/grace"
	"github.com/jimyag/jart/internal/jart/api"
	"github.com/jimyag/jart/internal/jart/config"
	"github.com/jimyag/jart/internal/jart/repository"
	"github.com/jimyag/jart/internal/jart/service"
	"github.com/rs/zerolog"
)

type Server struct {
	cfg  *config.Config
	api  *api.API
	repo *repository.Repository
}

func New(cfg *config.Config) (*Server, error) {
	logger, err := NewLogger(cfg.Log, os.Stdout)
	if err != nil {
		return nil, err
	}
	zerolog.DefaultContextLogger = &logger

	// 1. 连接数据库并迁移
	repo, err := repository.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("create repository: %w", err)
	}
	logger.Info().
		Str("driver", cfg.Database.Driver).
		Msg("Database initialized")

	// 2. 创建服务
	articleService := service.NewArticleService(repo, service.NewTagParser(cfg.Tags))
	tagService := service.NewTagService(repo)

	// 3. 创建 API
	apiInstance, err := api.New(cfg.Address, articleService, tagService)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	return &Server{
		cfg:  cfg,
		api:  apiInstance,
		repo: repo,
	}, nil
}

// NewLogger 按配置创建根 logger
func NewLogger(cfg config.LogConfig, out io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

func (s *Server) Run(ctx context.Context) error {
	// 使用 grace.Shepherd 管理服务生命周期
	services := []grace.Grace{
		s.api,
	}

	shepherd := grace.NewShepherd(
		services,
		grace.WithTimeout(30*time.Second),
		grace.WithLogger(&zerologLogger{}),
	)

	zerolog.DefaultContextLogger.Info().
		Str("address", s.cfg.Address).
		Msg("Starting jart server")

	shepherd.Start(ctx)
	return s.repo.Close()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.api.Shutdown(ctx); err != nil {
		return err
	}
	return s.repo.Close()
}

// Name 实现 grace.Grace 接口
func (s *Server) Name() string {
	return "jart Server"
}

// Migrate 只执行数据库迁移，供 migrate 子命令使用
func Migrate(cfg *config.Config) error {
	repo, err := repository.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return repo.Close()
}

// zerologLogger 实现 grace.Logger 接口
type zerologLogger struct{}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Info()
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}

func (l *zerologLogger) Error(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Error()
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}
