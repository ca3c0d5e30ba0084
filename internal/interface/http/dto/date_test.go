package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalJSON(t *testing.T) {
	t.Run("解析日期字符串", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-01-15"`), &d))
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d.Time)
	})

	t.Run("兼容RFC3339", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-01-15T08:30:00Z"`), &d))
		assert.Equal(t, 2024, d.Year())
	})

	t.Run("null解析为零值", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`null`), &d))
		assert.True(t, d.IsZero())
	})

	t.Run("空字符串解析为零值", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`""`), &d))
		assert.True(t, d.IsZero())
	})

	t.Run("非法格式返回错误", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"15/01/2024"`), &d))
	})

	t.Run("非字符串返回错误", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`20240115`), &d))
	})
}

func TestDateMarshalJSON(t *testing.T) {
	t.Run("输出日期部分", func(t *testing.T) {
		d := Date{Time: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)}
		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2024-01-15"`, string(data))
	})

	t.Run("零值输出null", func(t *testing.T) {
		data, err := json.Marshal(Date{})
		require.NoError(t, err)
		assert.Equal(t, `null`, string(data))
	})
}
