// Package repository 提供数据持久化层实现
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jimyag/jart/internal/jart/config"
	"github.com/jimyag/jart/internal/jart/repository/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // 纯 Go SQLite 驱动，不需要 CGO
)

// Repository 数据库仓库
type Repository struct {
	db *gorm.DB
}

// New 根据配置连接数据库并完成迁移
func New(cfg config.DatabaseConfig) (*Repository, error) {
	var (
		dialector gorm.Dialector
		err       error
	)
	switch cfg.Driver {
	case config.DriverSQLite, "":
		dialector, err = sqliteDialector(cfg.DSN)
		if err != nil {
			return nil, err
		}
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		if d, ok := dialector.(sqlite.Dialector); ok && d.Conn != nil {
			_ = d.Conn.(*sql.DB).Close()
		}
		return nil, fmt.Errorf("open gorm database: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		_ = repo.Close()
		return nil, err
	}
	return repo, nil
}

// sqliteDialector 使用 database/sql + modernc.org/sqlite 创建连接，再交给 GORM
func sqliteDialector(dbPath string) (gorm.Dialector, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	dsn := dbPath + sep + "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite 只允许一个写者，单连接避免 SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)

	return sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dsn,
		Conn:       sqlDB,
	}, nil
}

// migrate 注册自定义关联表并自动迁移
func (r *Repository) migrate() error {
	if err := r.db.SetupJoinTable(&model.Article{}, "Tags", &model.ArticleTag{}); err != nil {
		return fmt.Errorf("setup join table: %w", err)
	}
	if err := r.db.AutoMigrate(
		&model.Article{},
		&model.Tag{},
		&model.ArticleTag{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// DB 返回 GORM 数据库实例
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Articles 返回绑定到当前连接（或事务）的文章仓库
func (r *Repository) Articles() ArticleRepository {
	return NewArticleRepository(r.db)
}

// Tags 返回绑定到当前连接（或事务）的标签仓库
func (r *Repository) Tags() TagRepository {
	return NewTagRepository(r.db)
}

// Transaction 在一个数据库事务中执行 fn，fn 返回错误时回滚
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

// Close 关闭数据库连接
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
