package ginx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// bindArgs 绑定请求参数到 args 结构体
// 顺序：URI 参数 > 请求体（JSON 或表单，按 Content-Type 决定）
// 请求体后绑定，但 URI 字段应使用 json:"-" 以免被请求体覆盖
func bindArgs(ctx *gin.Context, args any) error {
	if len(ctx.Params) > 0 {
		if err := ctx.ShouldBindUri(args); err != nil {
			return err
		}
	}

	if !hasBody(ctx.Request) {
		return nil
	}
	return ctx.ShouldBind(args)
}

func hasBody(req *http.Request) bool {
	if req.Body == nil || req.Body == http.NoBody {
		return false
	}
	if req.Method == http.MethodGet || req.Method == http.MethodHead {
		return false
	}
	return req.ContentLength != 0
}
