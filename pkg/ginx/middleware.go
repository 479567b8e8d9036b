package ginx

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestID 为每个请求分配 ID，并把带有请求信息的 logger 放入请求的 context
// 客户端传入的 X-Request-ID 合法时会被沿用，否则生成新的 ID
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}
		setRequestID(ctx, requestID)
		ctx.Header(RequestIDHeader, requestID)

		logger := zerolog.Ctx(ctx.Request.Context()).With().
			Str("request_id", requestID).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Logger()
		ctx.Request = ctx.Request.WithContext(logger.WithContext(ctx.Request.Context()))

		start := time.Now()
		ctx.Next()

		logger.Info().
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Request completed")
	}
}

// maxRequestIDLength 客户端传入的请求 ID 的最大长度
const maxRequestIDLength = 128

// validRequestID 只接受非空、不超过 maxRequestIDLength 的可打印 ASCII 字符串
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
