package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
)

// UpdateBookUseCase 图书全量更新用例(PUT语义)
// "查询-冲突检查-覆盖-保存"作为一个事务单元执行
type UpdateBookUseCase struct {
	bookService book.Service
	txManager   *mysql.TxManager
}

// NewUpdateBookUseCase 创建全量更新用例
func NewUpdateBookUseCase(bookService book.Service, txManager *mysql.TxManager) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		txManager:   txManager,
	}
}

// Execute 执行全量更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, p book.UpdateBookParams) (*BookResult, error) {
	var updated *book.Book

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookService.UpdateBook(txCtx, id, p)
		if err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return newBookResult(updated), nil
}
