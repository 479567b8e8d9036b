package ginx

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jart/pkg/apierror"
)

// Option 调整适配器的行为
type Option func(*options)

type options struct {
	successStatus int
	errorStatus   int
}

func newOptions(opts []Option) *options {
	o := &options{
		successStatus: http.StatusOK,
		// handler 返回的错误默认使用 200 + success=false 的信封，
		// 调用方需要检查 success 字段；带状态码的 apierror.Error 会覆盖这里
		errorStatus: http.StatusOK,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithStatus 设置成功时的 HTTP 状态码
func WithStatus(status int) Option {
	return func(o *options) {
		o.successStatus = status
	}
}

// Adapt2 适配无参数、只有返回值的 handler
func Adapt2[T any](fn func(*gin.Context) T, opts ...Option) gin.HandlerFunc {
	o := newOptions(opts)
	return func(ctx *gin.Context) {
		renderResponse(ctx, o.successStatus, fn(ctx))
	}
}

// Adapt3 适配无参数、有返回值和 error 的 handler
func Adapt3[T any](fn func(*gin.Context) (T, error), opts ...Option) gin.HandlerFunc {
	o := newOptions(opts)
	return func(ctx *gin.Context) {
		result, err := fn(ctx)
		if err != nil {
			renderError(ctx, o.errorStatus, err)
			return
		}
		renderResponse(ctx, o.successStatus, result)
	}
}

// Adapt5 适配有参数、有返回值和 error 的 handler
func Adapt5[TArgs any, TResp any](fn func(*gin.Context, *TArgs) (TResp, error), opts ...Option) gin.HandlerFunc {
	o := newOptions(opts)
	var argsType TArgs
	argsTypeValue := reflect.TypeOf(argsType)

	return func(ctx *gin.Context) {
		argsValue := reflect.New(argsTypeValue)
		args := argsValue.Interface()

		if err := bindArgs(ctx, args); err != nil {
			renderError(ctx, http.StatusUnprocessableEntity,
				apierror.WrapError(apierror.ErrInvalidParameter, "invalid request", err))
			return
		}

		// 验证参数（如果实现了 IsValid 方法）
		if validator, ok := args.(interface{ IsValid() error }); ok {
			if err := validator.IsValid(); err != nil {
				renderError(ctx, http.StatusUnprocessableEntity, asInvalidParameter(err))
				return
			}
		}

		result, err := fn(ctx, args.(*TArgs))
		if err != nil {
			renderError(ctx, o.errorStatus, err)
			return
		}

		renderResponse(ctx, o.successStatus, result)
	}
}

// asInvalidParameter 把校验错误归类为 InvalidParameter，已经是 *apierror.Error 的保持不变
func asInvalidParameter(err error) error {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return err
	}
	return apierror.NewErrorWithStatus(apierror.ErrInvalidParameter.Code, err.Error(), http.StatusUnprocessableEntity)
}
