package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. WithDetail变体执行JOIN预加载,保证详情随聚合根一次性取出
type Repository interface {
	// Create 创建图书及其详情(同一事务内写入两张表)
	Create(ctx context.Context, b *Book) error

	// FindAll 查询全部图书(预加载详情)
	FindAll(ctx context.Context) ([]*Book, error)

	// FindByIDWithDetail 根据ID查找图书并预加载详情
	FindByIDWithDetail(ctx context.Context, id uint) (*Book, error)

	// FindByISBNWithDetail 根据ISBN查找图书并预加载详情
	FindByISBNWithDetail(ctx context.Context, isbn string) (*Book, error)

	// SearchByAuthor 作者子串搜索(匹配语义由存储层LIKE谓词决定)
	SearchByAuthor(ctx context.Context, author string) ([]*Book, error)

	// SearchByTitle 书名子串搜索
	SearchByTitle(ctx context.Context, title string) ([]*Book, error)

	// ExistsByISBN 检查ISBN是否已被占用
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)

	// Update 保存图书字段,已挂载详情时一并保存
	Update(ctx context.Context, b *Book) error

	// Delete 删除图书并级联删除详情,不存在时返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error
}
