package mysql

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// newTestDB 创建sqlite测试数据库
// 每个测试使用独立的数据库文件,互不干扰
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "打开测试数据库失败")

	require.NoError(t, AutoMigrate(db), "迁移表结构失败")

	return db
}

func newTestBook(isbn string) *book.Book {
	b := book.NewBook("Go语言实战", "威廉·肯尼迪", isbn, 45000,
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	b.AttachDetail(book.NewBookDetail(
		"深入理解Go语言底层原理", "中文", 320, "人民邮电出版社",
		"https://example.com/cover.jpg", "第2版",
	))
	return b
}

func TestBookRepositoryCreate(t *testing.T) {
	t.Run("创建图书及详情", func(t *testing.T) {
		repo := NewBookRepository(newTestDB(t))
		b := newTestBook("9781234567890")

		err := repo.Create(context.Background(), b)

		require.NoError(t, err)
		assert.NotZero(t, b.ID, "自增ID应回填")
		require.NotNil(t, b.Detail)
		assert.NotZero(t, b.Detail.ID, "详情ID应回填")
		assert.Equal(t, b.ID, b.Detail.BookID, "详情外键应指向图书")
	})

	t.Run("重复ISBN映射为业务冲突错误", func(t *testing.T) {
		repo := NewBookRepository(newTestDB(t))
		require.NoError(t, repo.Create(context.Background(), newTestBook("9781234567890")))

		err := repo.Create(context.Background(), newTestBook("9781234567890"))

		assert.ErrorIs(t, err, book.ErrISBNDuplicate)
	})
}

func TestBookRepositoryFind(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	created := newTestBook("9781234567890")
	require.NoError(t, repo.Create(context.Background(), created))

	t.Run("按ID查询并预加载详情", func(t *testing.T) {
		b, err := repo.FindByIDWithDetail(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, "9781234567890", b.ISBN)
		require.NotNil(t, b.Detail, "详情应被预加载")
		assert.Equal(t, 320, b.Detail.PageCount)
	})

	t.Run("按ISBN查询", func(t *testing.T) {
		b, err := repo.FindByISBNWithDetail(context.Background(), "9781234567890")

		require.NoError(t, err)
		assert.Equal(t, created.ID, b.ID)
	})

	t.Run("不存在返回NOT_FOUND", func(t *testing.T) {
		_, err := repo.FindByIDWithDetail(context.Background(), 9999)
		assert.ErrorIs(t, err, book.ErrBookNotFound)

		_, err = repo.FindByISBNWithDetail(context.Background(), "9789999999999")
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("FindAll返回全部图书", func(t *testing.T) {
		books, err := repo.FindAll(context.Background())

		require.NoError(t, err)
		assert.Len(t, books, 1)
		assert.NotNil(t, books[0].Detail)
	})
}

func TestBookRepositorySearch(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))

	b1 := newTestBook("9781234567890")
	require.NoError(t, repo.Create(context.Background(), b1))

	b2 := book.NewBook("Rust权威指南", "史蒂夫·克拉布尼克", "9790000000001", 56000,
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(context.Background(), b2))

	t.Run("作者子串搜索", func(t *testing.T) {
		books, err := repo.SearchByAuthor(context.Background(), "肯尼迪")

		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "9781234567890", books[0].ISBN)
	})

	t.Run("书名子串搜索", func(t *testing.T) {
		books, err := repo.SearchByTitle(context.Background(), "权威")

		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "9790000000001", books[0].ISBN)
	})

	t.Run("无命中返回空列表", func(t *testing.T) {
		books, err := repo.SearchByTitle(context.Background(), "不存在的书名")

		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestBookRepositoryExistsByISBN(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	require.NoError(t, repo.Create(context.Background(), newTestBook("9781234567890")))

	exists, err := repo.ExistsByISBN(context.Background(), "9781234567890")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByISBN(context.Background(), "9790000000001")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBookRepositoryUpdate(t *testing.T) {
	t.Run("更新图书与详情字段", func(t *testing.T) {
		repo := NewBookRepository(newTestDB(t))
		b := newTestBook("9781234567890")
		require.NoError(t, repo.Create(context.Background(), b))

		b.Title = "Go语言实战(修订版)"
		b.Price = 52000
		b.Detail.PageCount = 360

		require.NoError(t, repo.Update(context.Background(), b))

		reloaded, err := repo.FindByIDWithDetail(context.Background(), b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Go语言实战(修订版)", reloaded.Title)
		assert.Equal(t, 52000, reloaded.Price)
		assert.Equal(t, 360, reloaded.Detail.PageCount)
	})

	t.Run("更新为他书ISBN映射为业务冲突", func(t *testing.T) {
		repo := NewBookRepository(newTestDB(t))
		b1 := newTestBook("9781234567890")
		require.NoError(t, repo.Create(context.Background(), b1))
		b2 := newTestBook("9790000000001")
		require.NoError(t, repo.Create(context.Background(), b2))

		b2.ISBN = "9781234567890"
		err := repo.Update(context.Background(), b2)

		assert.ErrorIs(t, err, book.ErrISBNDuplicate)
	})
}

func TestBookRepositoryDelete(t *testing.T) {
	t.Run("删除图书并级联删除详情行", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewBookRepository(db)
		b := newTestBook("9781234567890")
		require.NoError(t, repo.Create(context.Background(), b))

		require.NoError(t, repo.Delete(context.Background(), b.ID))

		_, err := repo.FindByIDWithDetail(context.Background(), b.ID)
		assert.ErrorIs(t, err, book.ErrBookNotFound)

		// 详情行不应残留
		var count int64
		require.NoError(t, db.Model(&BookDetailModel{}).Where("book_id = ?", b.ID).Count(&count).Error)
		assert.Zero(t, count, "不应留下孤儿详情行")
	})

	t.Run("删除不存在的图书返回NOT_FOUND", func(t *testing.T) {
		repo := NewBookRepository(newTestDB(t))

		err := repo.Delete(context.Background(), 9999)

		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestTxManagerRollback(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	txManager := NewTxManager(db)

	// 事务内创建后返回错误,整个事务应回滚
	sentinel := assert.AnError
	err := txManager.Transaction(context.Background(), func(txCtx context.Context) error {
		if err := repo.Create(txCtx, newTestBook("9781234567890")); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	exists, err := repo.ExistsByISBN(context.Background(), "9781234567890")
	require.NoError(t, err)
	assert.False(t, exists, "回滚后不应有数据残留")
}
