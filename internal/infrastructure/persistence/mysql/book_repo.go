package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如ISBN重复),转换为业务错误
// 4. 所有方法通过getDB(ctx)参与TxManager开启的事务
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书及其详情
// GORM会将关联的详情模型一并插入，两张表的写入在同一事务内完成
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		// 唯一索引冲突:并发"检查-插入"竞态的最后防线
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID与时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	if b.Detail != nil && model.Detail != nil {
		b.Detail.ID = model.Detail.ID
		b.Detail.BookID = model.Detail.BookID
	}

	return nil
}

// FindAll 查询全部图书(预加载详情)
func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.getDB(ctx).Preload("Detail").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}
	return toBookEntities(models), nil
}

// FindByIDWithDetail 根据ID查找图书并预加载详情
func (r *bookRepository) FindByIDWithDetail(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Preload("Detail").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// FindByISBNWithDetail 根据ISBN查找图书并预加载详情
func (r *bookRepository) FindByISBNWithDetail(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Preload("Detail").Where("isbn = ?", isbn).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// SearchByAuthor 作者子串搜索
// 匹配语义由存储层LIKE谓词决定,结果顺序不保证稳定
func (r *bookRepository) SearchByAuthor(ctx context.Context, author string) ([]*book.Book, error) {
	var models []BookModel
	err := r.getDB(ctx).Preload("Detail").
		Where("author LIKE ?", "%"+author+"%").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "搜索图书失败")
	}
	return toBookEntities(models), nil
}

// SearchByTitle 书名子串搜索
func (r *bookRepository) SearchByTitle(ctx context.Context, title string) ([]*book.Book, error) {
	var models []BookModel
	err := r.getDB(ctx).Preload("Detail").
		Where("title LIKE ?", "%"+title+"%").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "搜索图书失败")
	}
	return toBookEntities(models), nil
}

// ExistsByISBN 检查ISBN是否已被占用
func (r *bookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&BookModel{}).
		Where("isbn = ?", isbn).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询ISBN失败")
	}
	return count > 0, nil
}

// Update 保存图书字段,已挂载详情时一并保存
// 说明:显式拆分两条Save,不依赖GORM的关联自动保存,写入行为可预期
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	db := r.getDB(ctx)
	model := toBookModel(b)

	if err := db.Omit(clause.Associations).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "更新图书失败")
	}
	b.UpdatedAt = model.UpdatedAt

	if model.Detail != nil {
		if err := db.Save(model.Detail).Error; err != nil {
			return apperrors.Wrap(err, "更新图书详情失败")
		}
	}

	return nil
}

// Delete 删除图书并级联删除详情
// 先删详情行再删图书行,保证不留孤儿详情(不依赖DB方言的级联行为)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	db := r.getDB(ctx)

	if err := db.Where("book_id = ?", id).Delete(&BookDetailModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除图书详情失败")
	}

	result := db.Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	model := &BookModel{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price,
		PublishDate: b.PublishDate,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.Detail != nil {
		model.Detail = &BookDetailModel{
			ID:            b.Detail.ID,
			BookID:        b.Detail.BookID,
			Description:   b.Detail.Description,
			Language:      b.Detail.Language,
			PageCount:     b.Detail.PageCount,
			Publisher:     b.Detail.Publisher,
			CoverImageURL: b.Detail.CoverImageURL,
			Edition:       b.Detail.Edition,
		}
	}
	return model
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	b := &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		Author:      model.Author,
		ISBN:        model.ISBN,
		Price:       model.Price,
		PublishDate: model.PublishDate,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
	if model.Detail != nil {
		b.Detail = &book.BookDetail{
			ID:            model.Detail.ID,
			BookID:        model.Detail.BookID,
			Description:   model.Detail.Description,
			Language:      model.Detail.Language,
			PageCount:     model.Detail.PageCount,
			Publisher:     model.Detail.Publisher,
			CoverImageURL: model.Detail.CoverImageURL,
			Edition:       model.Detail.Edition,
		}
	}
	return b
}

// toBookEntities 批量转换
func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}

// getDB 从context获取事务DB,如果没有则使用默认DB
// 事务传递机制:TxManager.Transaction注入,Repository提取
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txCtxKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
