// Package ginx 提供 gin 框架的 handler 适配器，支持自动参数绑定和统一响应
//
// 所有响应都包在同一个信封里：
//
//	成功：{"success": true,  "data": <handler 返回值>}
//	失败：{"success": false, "data": {"status": "error", "code": "...", "message": "..."}}
//
// handler 返回错误时默认状态码为 200，调用方需要检查 success 字段。
// 错误链上带 HTTPStatus 的 *apierror.Error 会覆盖默认状态码，
// 参数绑定和 IsValid 校验失败返回 422。
//
// 支持的 handler 函数签名：
//
//	// 有参数，有返回值，有 error
//	func(c *gin.Context, args *Args) (resp, error)
//
//	// 无参数，有返回值，有 error
//	func(c *gin.Context) (resp, error)
//
//	// 无参数，只有返回值
//	func(c *gin.Context) resp
//
// 参数绑定顺序：URI 参数 > 请求体（JSON 或表单）。
//
// 使用示例：
//
//	router := gin.New()
//	router.Use(ginx.RequestID())
//
//	router.POST("/articles", ginx.Adapt5(func(c *gin.Context, args *CreateArticleArgs) (*Article, error) {
//	    return &Article{...}, nil
//	}, ginx.WithStatus(http.StatusCreated)))
//
//	router.GET("/healthz", ginx.Adapt2(func(c *gin.Context) string {
//	    return "ok"
//	}))
package ginx
