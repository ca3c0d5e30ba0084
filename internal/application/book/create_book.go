package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 1. 应用层负责用例编排:划定事务边界、调用领域服务、投影响应
// 2. 业务规则校验(ISBN格式/唯一性、出版日期)由领域服务负责
// 3. "唯一性检查+两表插入"作为一个事务单元执行
type CreateBookUseCase struct {
	bookService book.Service
	txManager   *mysql.TxManager
}

// NewCreateBookUseCase 创建用例实例
func NewCreateBookUseCase(bookService book.Service, txManager *mysql.TxManager) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
		txManager:   txManager,
	}
}

// Execute 执行创建用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, p book.CreateBookParams) (*BookResult, error) {
	var created *book.Book

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookService.CreateBook(txCtx, p)
		if err != nil {
			return err // 自动回滚
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.BooksCreatedTotal)
	return newBookResult(created), nil
}
