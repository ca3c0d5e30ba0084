package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
)

// PatchBookUseCase 图书部分更新用例(PATCH语义)
// 缺席字段保持不变的合并规则由领域服务实现,此处只管事务与投影
type PatchBookUseCase struct {
	bookService book.Service
	txManager   *mysql.TxManager
}

// NewPatchBookUseCase 创建部分更新用例
func NewPatchBookUseCase(bookService book.Service, txManager *mysql.TxManager) *PatchBookUseCase {
	return &PatchBookUseCase{
		bookService: bookService,
		txManager:   txManager,
	}
}

// Execute 执行部分更新
func (uc *PatchBookUseCase) Execute(ctx context.Context, id uint, p book.PatchBookParams) (*BookResult, error) {
	var patched *book.Book

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookService.PatchBook(txCtx, id, p)
		if err != nil {
			return err
		}
		patched = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return newBookResult(patched), nil
}
