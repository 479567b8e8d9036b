// Package apierror 提供带错误类型的统一错误处理
package apierror

import (
	"errors"
	"fmt"
)

// Error 单个错误信息
// Code 是错误类型（kind），调用方通过 errors.Is 按 Code 判断
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"` // HTTP 状态码，为 0 时由调用方决定
	RawError   error  `json:"-"` // 内部错误，不会序列化到响应中
}

// Error 实现 error 接口
func (e *Error) Error() string {
	str := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.RawError != nil {
		str += fmt.Sprintf(" (RawError: %v)", e.RawError)
	}
	return str
}

// Detail 返回面向调用方的错误描述，包含底层错误信息
func (e *Error) Detail() string {
	if e.RawError == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.RawError)
}

// Is 实现 errors.Is 接口
// 如果 target 是 *Error 类型且 Code 相同，则返回 true
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if e == nil || t == nil {
		return false
	}

	return e.Code == t.Code
}

// Unwrap 返回底层错误
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.RawError
}

var _ interface {
	Error() string
	Is(target error) bool
	Unwrap() error
} = (*Error)(nil)

// NewErrorWithStatus 创建新的错误，指定 HTTP 状态码
func NewErrorWithStatus(code, message string, httpStatus int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// WrapError 包装预定义的错误，添加原始错误信息
// 保留预定义错误的 Code 和 HTTPStatus，但使用自定义消息和原始错误
func WrapError(baseErr *Error, message string, rawError error) *Error {
	return &Error{
		Code:       baseErr.Code,
		Message:    message,
		HTTPStatus: baseErr.HTTPStatus,
		RawError:   rawError,
	}
}

// ErrorBody 失败响应中 data 字段的内容
type ErrorBody struct {
	Status    string `json:"status"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// NewErrorBody 根据任意 error 构造失败响应体
// 非 *Error 的错误按 InternalError 处理
func NewErrorBody(requestID string, err error) *ErrorBody {
	body := &ErrorBody{
		Status:    "error",
		RequestID: requestID,
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		body.Code = apiErr.Code
		body.Message = apiErr.Detail()
		return body
	}

	body.Code = ErrInternalError.Code
	if err != nil {
		body.Message = err.Error()
	}
	return body
}

// StatusOf 返回错误链中第一个 *Error 的 HTTP 状态码，没有则返回 fallback
func StatusOf(err error, fallback int) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.HTTPStatus > 0 {
		return apiErr.HTTPStatus
	}
	return fallback
}
