// Package validator 注册gin绑定层的自定义校验规则
//
// 设计说明:
// 1. gin底层使用go-playground/validator，通过binding.Validator.Engine()取出引擎
// 2. isbn: 校验ISBN-13格式（978/979前缀 + 10位数字）
// 3. pastdate: 校验日期为当前或过去（出版日期不能在未来）
// 4. dto.Date通过RegisterCustomTypeFunc转换为time.Time参与校验
package validator

import (
	"reflect"
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
)

// isbnPattern ISBN-13格式：978或979开头，后接10位数字
var isbnPattern = regexp.MustCompile(`^(978|979)[0-9]{10}$`)

// Setup 注册全部自定义校验规则
// 必须在路由注册之前调用（main和handler测试各调用一次）
func Setup() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	// dto.Date → time.Time，使required/pastdate等规则可用
	v.RegisterCustomTypeFunc(dateValueOf, dto.Date{})

	if err := v.RegisterValidation("isbn", isValidISBN); err != nil {
		return err
	}
	return v.RegisterValidation("pastdate", isPastOrPresent)
}

// dateValueOf dto.Date自定义类型转换
func dateValueOf(field reflect.Value) interface{} {
	if d, ok := field.Interface().(dto.Date); ok {
		return d.Time
	}
	return nil
}

// isValidISBN 校验ISBN格式
func isValidISBN(fl validator.FieldLevel) bool {
	return isbnPattern.MatchString(fl.Field().String())
}

// isPastOrPresent 校验日期为当前或过去
// 零值放行，是否必填交给required规则判断
func isPastOrPresent(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if t.IsZero() {
		return true
	}
	return !t.After(time.Now())
}
