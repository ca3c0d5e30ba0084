package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// ListBooksUseCase 全部图书查询用例
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// Execute 查询全部图书,详情仅在存在时输出
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]*BookResult, error) {
	books, err := uc.bookService.GetAllBooks(ctx)
	if err != nil {
		return nil, err
	}
	return newBookResults(books), nil
}
