package validator

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
)

// engine 取出gin绑定层的校验引擎
func engine(t *testing.T) *validator.Validate {
	t.Helper()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok, "gin绑定引擎应为go-playground validator")
	return v
}

// TestSetupIdempotent 手动DI的main和Wire注入的provideGinEngine都会调用Setup,
// 重复调用不应报错
func TestSetupIdempotent(t *testing.T) {
	require.NoError(t, Setup())
	require.NoError(t, Setup())
}

func TestISBNRule(t *testing.T) {
	require.NoError(t, Setup())
	v := engine(t)

	type payload struct {
		ISBN string `binding:"required,isbn"`
	}

	assert.NoError(t, v.Struct(payload{ISBN: "9781234567890"}))
	assert.NoError(t, v.Struct(payload{ISBN: "9790000000001"}))
	assert.Error(t, v.Struct(payload{ISBN: "1234567890123"}), "无合法前缀应拒绝")
	assert.Error(t, v.Struct(payload{ISBN: "978123456789"}), "长度不足应拒绝")
}

func TestPastDateRule(t *testing.T) {
	require.NoError(t, Setup())
	v := engine(t)

	type payload struct {
		PublishDate dto.Date `binding:"required,pastdate"`
	}

	past := dto.Date{Time: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.NoError(t, v.Struct(payload{PublishDate: past}))

	future := dto.Date{Time: time.Now().AddDate(1, 0, 0)}
	assert.Error(t, v.Struct(payload{PublishDate: future}), "未来日期应拒绝")

	// 零值由required拦截(CustomTypeFunc将dto.Date转为time.Time参与校验)
	assert.Error(t, v.Struct(payload{}))
}
