package entity

// Tag 标签信息
type Tag struct {
	ID    string `json:"id"`    // 标签 ID: tag-{递增 ID}
	Title string `json:"title"` // 标题，全局唯一
}
