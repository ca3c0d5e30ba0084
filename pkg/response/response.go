package response

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// ErrorObject 统一错误响应结构
// 设计说明：
// 1. StatusCode与HTTP响应状态码一致，客户端无需解析Header
// 2. Message是用户友好的提示信息（校验失败时为首个字段级错误）
// 3. Timestamp为错误发生时间（RFC3339）
type ErrorObject struct {
	StatusCode int       `json:"status_code"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	result, err := useCase.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误只进日志，不回给客户端
	if appErr.Err != nil {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr.Err)
	}

	c.JSON(appErr.StatusCode, ErrorObject{
		StatusCode: appErr.StatusCode,
		Message:    appErr.Message,
		Timestamp:  time.Now(),
	})
}

// BindError 参数绑定/校验失败响应（400）
// 设计说明：
// 1. validator.ValidationErrors取首个字段错误，转换为可读信息
// 2. 其他绑定错误（JSON语法错误等）直接返回err.Error()
func BindError(c *gin.Context, err error) {
	message := err.Error()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		message = fieldErrorMessage(verrs[0])
	}

	c.JSON(http.StatusBadRequest, ErrorObject{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Timestamp:  time.Now(),
	})
}

// fieldErrorMessage 将字段级校验错误转换为提示信息
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " 为必填字段"
	case "isbn":
		return "ISBN格式不正确（如：9781234567890）"
	case "pastdate":
		return fe.Field() + " 必须是当前或过去的日期"
	case "min":
		return fe.Field() + " 不能小于 " + fe.Param()
	case "max":
		return fe.Field() + " 不能大于 " + fe.Param()
	default:
		return fe.Field() + " 校验失败（" + fe.Tag() + "）"
	}
}
