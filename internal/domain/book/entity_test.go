package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttachDetail(t *testing.T) {
	b := NewBook("Go语言实战", "威廉·肯尼迪", "9781234567890", 45000, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	b.ID = 7

	d := NewBookDetail("深入理解Go语言底层原理", "中文", 320, "人民邮电出版社", "", "第2版")
	b.AttachDetail(d)

	assert.True(t, b.HasDetail(), "挂载后应有详情")
	assert.Equal(t, uint(7), b.Detail.BookID, "详情外键应指向聚合根")
}

func TestReplace(t *testing.T) {
	b := NewBook("旧书名", "旧作者", "9781234567890", 100, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	newDate := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	b.Replace("新书名", "新作者", "9790000000001", 200, newDate)

	assert.Equal(t, "新书名", b.Title)
	assert.Equal(t, "新作者", b.Author)
	assert.Equal(t, "9790000000001", b.ISBN)
	assert.Equal(t, 200, b.Price)
	assert.Equal(t, newDate, b.PublishDate)
}

func TestApplyPatch(t *testing.T) {
	t.Run("只覆盖携带的字段", func(t *testing.T) {
		b := NewBook("原书名", "原作者", "9781234567890", 100, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

		price := 250
		b.ApplyPatch(BookPatch{Price: &price})

		assert.Equal(t, 250, b.Price, "携带的字段应被覆盖")
		assert.Equal(t, "原书名", b.Title, "缺席字段应保持不变")
		assert.Equal(t, "原作者", b.Author)
		assert.Equal(t, "9781234567890", b.ISBN)
	})

	t.Run("空patch不改变任何业务字段", func(t *testing.T) {
		b := NewBook("原书名", "原作者", "9781234567890", 100, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

		b.ApplyPatch(BookPatch{})

		assert.Equal(t, "原书名", b.Title)
		assert.Equal(t, 100, b.Price)
	})
}

func TestDetailApplyPatch(t *testing.T) {
	d := NewBookDetail("原描述", "中文", 300, "原出版社", "https://example.com/a.jpg", "第1版")

	pageCount := 350
	edition := "第2版"
	d.ApplyPatch(DetailPatch{
		PageCount: &pageCount,
		Edition:   &edition,
	})

	assert.Equal(t, 350, d.PageCount)
	assert.Equal(t, "第2版", d.Edition)
	assert.Equal(t, "原描述", d.Description, "缺席字段应保持不变")
	assert.Equal(t, "原出版社", d.Publisher)
}

func TestDetailOverwrite(t *testing.T) {
	d := NewBookDetail("原描述", "中文", 300, "原出版社", "https://example.com/a.jpg", "第1版")

	d.Overwrite("新描述", "英文", 400, "新出版社", "", "第3版")

	assert.Equal(t, "新描述", d.Description)
	assert.Equal(t, "英文", d.Language)
	assert.Equal(t, 400, d.PageCount)
	assert.Equal(t, "新出版社", d.Publisher)
	assert.Empty(t, d.CoverImageURL, "覆盖语义下空值也要写入")
	assert.Equal(t, "第3版", d.Edition)
}
