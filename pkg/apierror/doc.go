// Package apierror 提供带错误类型的统一错误处理
//
// 每个错误都带有一个 Code 作为错误类型，服务层返回 *Error，
// handler 适配器再把它渲染成统一的失败信封：
//
//	{
//	    "success": false,
//	    "data": {
//	        "status": "error",
//	        "code": "ArticleNotFound",
//	        "message": "article art-1 does not exist",
//	        "request_id": "0f8c..."
//	    }
//	}
//
// 预定义的错误类型：
//
//   - ErrInvalidParameter: 请求参数错误（422）
//   - ErrArticleNotFound: 文章不存在（404）
//   - ErrInternalError: 内部错误，不带状态码
//
// 使用示例：
//
//	if errors.Is(err, gorm.ErrRecordNotFound) {
//	    return nil, apierror.WrapError(apierror.ErrArticleNotFound, "article does not exist", err)
//	}
package apierror
