package apierror

import "net/http"

// 预定义的错误类型
var (
	// ErrInvalidParameter 请求参数无法解析或校验失败
	ErrInvalidParameter = &Error{
		Code:       "InvalidParameter",
		Message:    "The request contains an invalid parameter.",
		HTTPStatus: http.StatusUnprocessableEntity,
	}

	// ErrArticleNotFound 路由中的文章 ID 不存在
	ErrArticleNotFound = &Error{
		Code:       "ArticleNotFound",
		Message:    "The specified article does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrInternalError 持久化或其他内部错误
	// 不指定状态码，由 handler 适配器按失败信封约定返回
	ErrInternalError = &Error{
		Code:    "InternalError",
		Message: "An internal error has occurred.",
	}
)
