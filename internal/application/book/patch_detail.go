package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
)

// PatchBookDetailUseCase 详情子资源部分更新用例
// 图书不存在与详情不存在是两种不同的NOT_FOUND,由领域服务区分
type PatchBookDetailUseCase struct {
	bookService book.Service
	txManager   *mysql.TxManager
}

// NewPatchBookDetailUseCase 创建详情更新用例
func NewPatchBookDetailUseCase(bookService book.Service, txManager *mysql.TxManager) *PatchBookDetailUseCase {
	return &PatchBookDetailUseCase{
		bookService: bookService,
		txManager:   txManager,
	}
}

// Execute 执行详情部分更新,返回详情投影
func (uc *PatchBookDetailUseCase) Execute(ctx context.Context, id uint, p book.DetailPatch) (*DetailResult, error) {
	var patched *book.BookDetail

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		d, err := uc.bookService.PatchBookDetail(txCtx, id, p)
		if err != nil {
			return err
		}
		patched = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	return newDetailResult(patched), nil
}
