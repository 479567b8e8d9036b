package ginx

import (
	"github.com/gin-gonic/gin"
	"github.com/jimyag/jart/pkg/apierror"
	"github.com/rs/zerolog"
)

// Envelope 所有响应的外层结构
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// renderResponse 渲染成功响应
func renderResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, Envelope{
		Success: true,
		Data:    data,
	})
}

// renderError 渲染失败响应
// 如果 err 链上有带状态码的 *apierror.Error，使用它的状态码，否则使用 status
func renderError(ctx *gin.Context, status int, err error) {
	status = apierror.StatusOf(err, status)

	zerolog.Ctx(ctx.Request.Context()).Error().
		Err(err).
		Int("status", status).
		Msg("Request failed")

	ctx.JSON(status, Envelope{
		Success: false,
		Data:    apierror.NewErrorBody(RequestIDFrom(ctx), err),
	})
}
