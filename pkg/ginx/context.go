package ginx

import (
	"github.com/gin-gonic/gin"
)

// RequestIDHeader 请求 ID 的请求头和响应头
const RequestIDHeader = "X-Request-ID"

// requestIDKey 在 gin.Context 中存储请求 ID 的 key
const requestIDKey = "ginx.request_id"

func setRequestID(ctx *gin.Context, requestID string) {
	ctx.Set(requestIDKey, requestID)
}

// RequestIDFrom 返回当前请求的 ID，没有经过 RequestID 中间件时返回空字符串
func RequestIDFrom(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}
