package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("Error输出包含状态码和提示", func(t *testing.T) {
		err := New(http.StatusNotFound, "图书不存在")
		assert.Equal(t, "[404] 图书不存在", err.Error())
	})

	t.Run("包装错误时输出内部错误", func(t *testing.T) {
		inner := errors.New("connection refused")
		err := Wrap(inner, "查询图书失败")

		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.Contains(t, err.Error(), "connection refused")
		assert.ErrorIs(t, err, inner, "Unwrap应暴露内部错误")
	})
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("x").StatusCode)
	assert.Equal(t, http.StatusConflict, Conflict("x").StatusCode)
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").StatusCode)
	assert.Equal(t, "无效的图书ID: abc", BadRequest("无效的图书ID: %s", "abc").Message)
}

func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		src := NotFound("图书不存在")
		got := GetAppError(src)
		assert.Same(t, src, got)
	})

	t.Run("errors.Is链中的AppError也能提取", func(t *testing.T) {
		src := Conflict("ISBN号已存在")
		wrapped := fmt.Errorf("执行用例失败: %w", src)

		got := GetAppError(wrapped)
		assert.Equal(t, http.StatusConflict, got.StatusCode)
	})

	t.Run("普通错误包装为500", func(t *testing.T) {
		got := GetAppError(errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
		assert.Equal(t, "系统内部错误", got.Message)
	})
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(NotFound("x")))
	assert.False(t, IsAppError(errors.New("plain")))
}
