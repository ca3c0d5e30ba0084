package book

import (
	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// dateLayout 响应中日期字段的格式
const dateLayout = "2006-01-02"

// BookResult 图书响应DTO
// 设计说明:应用层统一的读模型投影,各用例共享;
// 详情仅在存在时输出(创建流程必定挂载,投影上仍按可选处理)
type BookResult struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	ISBN        string        `json:"isbn"`
	Price       int           `json:"price"`
	PublishDate string        `json:"publish_date"`
	Detail      *DetailResult `json:"detail,omitempty"`
}

// DetailResult 图书详情响应DTO
type DetailResult struct {
	Description   string `json:"description"`
	Language      string `json:"language"`
	PageCount     int    `json:"page_count"`
	Publisher     string `json:"publisher"`
	CoverImageURL string `json:"cover_image_url"`
	Edition       string `json:"edition"`
}

// newBookResult 领域实体 → 响应投影
func newBookResult(b *book.Book) *BookResult {
	result := &BookResult{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price,
		PublishDate: b.PublishDate.Format(dateLayout),
	}
	if b.Detail != nil {
		result.Detail = newDetailResult(b.Detail)
	}
	return result
}

// newDetailResult 详情实体 → 响应投影
func newDetailResult(d *book.BookDetail) *DetailResult {
	return &DetailResult{
		Description:   d.Description,
		Language:      d.Language,
		PageCount:     d.PageCount,
		Publisher:     d.Publisher,
		CoverImageURL: d.CoverImageURL,
		Edition:       d.Edition,
	}
}

// newBookResults 批量投影
func newBookResults(books []*book.Book) []*BookResult {
	results := make([]*BookResult, len(books))
	for i, b := range books {
		results[i] = newBookResult(b)
	}
	return results
}
