package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// DeleteBookUseCase 图书删除用例
// 图书行与详情行的删除在同一事务内完成,不存在时返回NOT_FOUND而非no-op
type DeleteBookUseCase struct {
	bookService book.Service
	txManager   *mysql.TxManager
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service, txManager *mysql.TxManager) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		txManager:   txManager,
	}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.bookService.DeleteBook(txCtx, id)
	})
	if err != nil {
		return err
	}

	metrics.IncCounter(metrics.BooksDeletedTotal)
	return nil
}
