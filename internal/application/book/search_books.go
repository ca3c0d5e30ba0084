package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// SearchBooksUseCase 图书搜索用例(作者/书名子串)
// 返回可能为空的序列,顺序由存储层决定
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建搜索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{bookService: bookService}
}

// ExecuteByAuthor 作者子串搜索
func (uc *SearchBooksUseCase) ExecuteByAuthor(ctx context.Context, author string) ([]*BookResult, error) {
	books, err := uc.bookService.SearchBooksByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	return newBookResults(books), nil
}

// ExecuteByTitle 书名子串搜索
func (uc *SearchBooksUseCase) ExecuteByTitle(ctx context.Context, title string) ([]*BookResult, error) {
	books, err := uc.bookService.SearchBooksByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return newBookResults(books), nil
}
