package book

import (
	"net/http"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书领域错误定义
// 说明:错误直接携带HTTP状态码,transport层原样映射到响应
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(http.StatusNotFound, "图书不存在")

	// ErrDetailNotFound 图书存在但详情不存在(PATCH detail子资源专用)
	ErrDetailNotFound = apperrors.New(http.StatusNotFound, "图书详情不存在")

	// ErrISBNDuplicate ISBN已被其他图书使用
	ErrISBNDuplicate = apperrors.New(http.StatusConflict, "ISBN号已存在")

	// ErrInvalidISBN ISBN格式不正确
	ErrInvalidISBN = apperrors.New(http.StatusBadRequest, "ISBN格式不正确（如：9781234567890）")

	// ErrFuturePublishDate 出版日期在未来
	ErrFuturePublishDate = apperrors.New(http.StatusBadRequest, "出版日期必须是当前或过去的日期")
)
