// Package idgen 提供递增 ID 生成器
//
// 使用 Sonyflake 算法生成全局唯一且时间有序的 64 位 ID，
// 再加上资源前缀作为对外暴露的字符串 ID：
//   - 文章 ID: art-{递增数字}
//   - 标签 ID: tag-{递增数字}
//
// 使用方式：
//
//	gen := idgen.New()
//	articleID, err := gen.GenerateArticleID()
//	// articleID: "art-1234567890"
//
//	// 或使用进程内共享的默认生成器
//	tagID, err := idgen.DefaultGenerator().GenerateTagID()
package idgen
