package dto

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date JSON日期类型(只含日期部分)
// 设计说明:
// 1. 请求/响应统一使用"2006-01-02"格式
// 2. 空字符串/null解析为零值,是否必填交给binding的required规则
// 3. 通过pkg/validator注册的CustomTypeFunc参与required/pastdate校验
type Date struct {
	time.Time
}

// dateLayouts 按顺序尝试的解析格式
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// UnmarshalJSON 解析JSON日期字符串
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("日期必须是字符串: %w", err)
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t
			return nil
		}
	}

	return fmt.Errorf("无法解析日期: %s（格式应为2006-01-02）", s)
}

// MarshalJSON 序列化为"2006-01-02"字符串
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}
	return json.Marshal(d.Time.Format("2006-01-02"))
}
