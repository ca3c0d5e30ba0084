package dto

import (
	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// BookDetailRequest 图书详情创建/覆盖载荷
// validator tag说明:
// - required: 必填字段
// - min=1: 页数至少为1
// - isbn/pastdate: 自定义校验(在pkg/validator中注册)
type BookDetailRequest struct {
	Description   string `json:"description" binding:"required" example:"深入理解Go语言底层原理"`
	Language      string `json:"language" binding:"max=50" example:"中文"`
	PageCount     int    `json:"page_count" binding:"required,min=1" example:"320"`
	Publisher     string `json:"publisher" binding:"max=100" example:"人民邮电出版社"`
	CoverImageURL string `json:"cover_image_url" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
	Edition       string `json:"edition" binding:"max=50" example:"第2版"`
}

// CreateBookRequest 创建图书载荷(详情必填,聚合一体创建)
// Price使用指针:required只拒绝null/缺席,0是合法价格
type CreateBookRequest struct {
	Title       string             `json:"title" binding:"required,max=200" example:"Go语言实战"`
	Author      string             `json:"author" binding:"required,max=100" example:"威廉·肯尼迪"`
	ISBN        string             `json:"isbn" binding:"required,isbn" example:"9781234567890"`
	Price       *int               `json:"price" binding:"required" example:"45000"`
	PublishDate Date               `json:"publish_date" binding:"required,pastdate" swaggertype:"string" example:"2024-01-15"`
	Detail      *BookDetailRequest `json:"detail" binding:"required"`
}

// ToParams HTTP载荷 → 领域参数
func (r CreateBookRequest) ToParams() book.CreateBookParams {
	return book.CreateBookParams{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Price:       *r.Price,
		PublishDate: r.PublishDate.Time,
		Detail:      r.Detail.toParams(),
	}
}

func (r BookDetailRequest) toParams() book.DetailParams {
	return book.DetailParams{
		Description:   r.Description,
		Language:      r.Language,
		PageCount:     r.PageCount,
		Publisher:     r.Publisher,
		CoverImageURL: r.CoverImageURL,
		Edition:       r.Edition,
	}
}

// UpdateBookRequest 全量更新载荷(PUT语义)
// 说明:ISBN属于全量替换的一部分,总是被比较/写入;
// Detail缺席时已存储的详情保持不变,存在时所有详情字段无条件覆盖
type UpdateBookRequest struct {
	Title       string             `json:"title" binding:"required,max=200"`
	Author      string             `json:"author" binding:"required,max=100"`
	ISBN        string             `json:"isbn" binding:"required,isbn"`
	Price       *int               `json:"price" binding:"required"`
	PublishDate Date               `json:"publish_date" binding:"required,pastdate" swaggertype:"string" example:"2024-01-15"`
	Detail      *BookDetailRequest `json:"detail"`
}

// ToParams HTTP载荷 → 领域参数
func (r UpdateBookRequest) ToParams() book.UpdateBookParams {
	p := book.UpdateBookParams{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Price:       *r.Price,
		PublishDate: r.PublishDate.Time,
	}
	if r.Detail != nil {
		d := r.Detail.toParams()
		p.Detail = &d
	}
	return p
}

// PatchBookRequest 部分更新载荷(PATCH语义)
// 指针字段为nil表示缺席,保持原值不变("absence means leave unchanged")
type PatchBookRequest struct {
	Title       *string                 `json:"title" binding:"omitempty,min=1,max=200"`
	Author      *string                 `json:"author" binding:"omitempty,min=1,max=100"`
	ISBN        *string                 `json:"isbn" binding:"omitempty,isbn"`
	Price       *int                    `json:"price"`
	PublishDate *Date                   `json:"publish_date" binding:"omitempty,pastdate" swaggertype:"string" example:"2024-01-15"`
	Detail      *PatchBookDetailRequest `json:"detail"`
}

// ToParams HTTP载荷 → 领域参数
func (r PatchBookRequest) ToParams() book.PatchBookParams {
	p := book.PatchBookParams{
		BookPatch: book.BookPatch{
			Title:  r.Title,
			Author: r.Author,
			ISBN:   r.ISBN,
			Price:  r.Price,
		},
	}
	if r.PublishDate != nil {
		t := r.PublishDate.Time
		p.PublishDate = &t
	}
	if r.Detail != nil {
		d := r.Detail.ToPatch()
		p.Detail = &d
	}
	return p
}

// PatchBookDetailRequest 详情部分更新载荷
type PatchBookDetailRequest struct {
	Description   *string `json:"description" binding:"omitempty,min=1"`
	Language      *string `json:"language" binding:"omitempty,max=50"`
	PageCount     *int    `json:"page_count" binding:"omitempty,min=1"`
	Publisher     *string `json:"publisher" binding:"omitempty,max=100"`
	CoverImageURL *string `json:"cover_image_url" binding:"omitempty,url,max=500"`
	Edition       *string `json:"edition" binding:"omitempty,max=50"`
}

// ToPatch HTTP载荷 → 领域参数
func (r PatchBookDetailRequest) ToPatch() book.DetailPatch {
	return book.DetailPatch{
		Description:   r.Description,
		Language:      r.Language,
		PageCount:     r.PageCount,
		Publisher:     r.Publisher,
		CoverImageURL: r.CoverImageURL,
		Edition:       r.Edition,
	}
}
