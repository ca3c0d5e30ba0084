package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// GetBookUseCase 图书查询用例(按ID/按ISBN)
// 只读操作,不划定写事务
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建查询用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// ExecuteByID 按ID查询(JOIN预加载详情)
func (uc *GetBookUseCase) ExecuteByID(ctx context.Context, id uint) (*BookResult, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newBookResult(b), nil
}

// ExecuteByISBN 按ISBN查询(JOIN预加载详情)
func (uc *GetBookUseCase) ExecuteByISBN(ctx context.Context, isbn string) (*BookResult, error) {
	b, err := uc.bookService.GetBookByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	return newBookResult(b), nil
}
