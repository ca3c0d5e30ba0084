package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. StatusCode直接承载HTTP状态码，transport层原样映射（404/409/400等）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	StatusCode int    `json:"status_code"` // HTTP状态码
	Message    string `json:"message"`     // 用户友好的错误提示
	Err        error  `json:"-"`           // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(statusCode int, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// Newf 格式化创建AppError
func Newf(statusCode int, format string, args ...interface{}) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf(format, args...),
	}
}

// NotFound 创建404错误
func NotFound(format string, args ...interface{}) *AppError {
	return Newf(http.StatusNotFound, format, args...)
}

// Conflict 创建409错误
func Conflict(format string, args ...interface{}) *AppError {
	return Newf(http.StatusConflict, format, args...)
}

// BadRequest 创建400错误
func BadRequest(format string, args ...interface{}) *AppError {
	return Newf(http.StatusBadRequest, format, args...)
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
		Err:        err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		StatusCode: http.StatusInternalServerError,
		Message:    fmt.Sprintf(format, args...),
		Err:        err,
	}
}

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成500错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
