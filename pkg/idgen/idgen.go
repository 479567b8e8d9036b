package idgen

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sony/sonyflake"
)

// Generator 递增 ID 生成器
// 使用 Sonyflake 算法生成全局唯一且递增的 ID
type Generator struct {
	sf *sonyflake.Sonyflake
}

var (
	defaultGenerator     *Generator
	defaultGeneratorOnce sync.Once
)

// DefaultGenerator 返回默认的 ID 生成器
func DefaultGenerator() *Generator {
	defaultGeneratorOnce.Do(func() {
		defaultGenerator = New()
	})
	return defaultGenerator
}

// New 创建新的 ID 生成器
func New() *Generator {
	startTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sf := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: startTime,
	})
	if sf == nil {
		// 没有私有网段 IP 时默认的机器 ID 取不到，退化为进程号
		sf = sonyflake.NewSonyflake(sonyflake.Settings{
			StartTime: startTime,
			MachineID: func() (uint16, error) {
				return uint16(os.Getpid()), nil
			},
		})
	}

	return &Generator{
		sf: sf,
	}
}

// generateIDWithPrefix 生成带前缀的 ID
func (g *Generator) generateIDWithPrefix(prefix, errorMsg string) (string, error) {
	id, err := g.sf.NextID()
	if err != nil {
		return "", fmt.Errorf("%s: %w", errorMsg, err)
	}
	return fmt.Sprintf("%s-%d", prefix, id), nil
}

// GenerateArticleID 生成文章 ID（格式：art-{递增 ID}）
func (g *Generator) GenerateArticleID() (string, error) {
	return g.generateIDWithPrefix("art", "generate article ID")
}

// GenerateTagID 生成标签 ID（格式：tag-{递增 ID}）
func (g *Generator) GenerateTagID() (string, error) {
	return g.generateIDWithPrefix("tag", "generate tag ID")
}
