package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,BookDetail只能通过Book访问和管理
// 2. ISBN作为业务唯一标识(数据库层唯一索引兜底)
// 3. PublishDate只取日期部分,时间部分无业务含义
// 4. Detail为nil表示未挂载详情(正常创建流程必定挂载)
type Book struct {
	ID          uint
	Title       string // 书名
	Author      string // 作者
	ISBN        string // ISBN号(国际标准书号)
	Price       int    // 价格
	PublishDate time.Time
	Detail      *BookDetail
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookDetail 图书详情实体
// 关系说明:BookDetail持有BookID外键,是一对一关系的拥有方
type BookDetail struct {
	ID            uint
	BookID        uint   // 所属图书ID
	Description   string // 图书描述
	Language      string // 语言
	PageCount     int    // 页数
	Publisher     string // 出版社
	CoverImageURL string // 封面图片URL
	Edition       string // 版次
}

// NewBook 创建新图书(工厂方法)
// 调用方需先完成业务规则校验(ISBN格式、出版日期)
func NewBook(title, author, isbn string, price int, publishDate time.Time) *Book {
	now := time.Now()
	return &Book{
		Title:       title,
		Author:      author,
		ISBN:        isbn,
		Price:       price,
		PublishDate: publishDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewBookDetail 创建图书详情(工厂方法)
func NewBookDetail(description, language string, pageCount int, publisher, coverImageURL, edition string) *BookDetail {
	return &BookDetail{
		Description:   description,
		Language:      language,
		PageCount:     pageCount,
		Publisher:     publisher,
		CoverImageURL: coverImageURL,
		Edition:       edition,
	}
}

// AttachDetail 挂载图书详情(设置双向关联)
// 同时维护聚合根引用和拥有方外键,保证数据一致性
func (b *Book) AttachDetail(d *BookDetail) {
	b.Detail = d
	if d != nil {
		d.BookID = b.ID
	}
}

// HasDetail 是否已挂载详情
func (b *Book) HasDetail() bool {
	return b.Detail != nil
}

// Replace 全量替换图书字段(PUT语义)
// 所有字段无条件覆盖,ISBN变更的冲突检查由领域服务负责
func (b *Book) Replace(title, author, isbn string, price int, publishDate time.Time) {
	b.Title = title
	b.Author = author
	b.ISBN = isbn
	b.Price = price
	b.PublishDate = publishDate
	b.UpdatedAt = time.Now()
}

// BookPatch 图书部分更新字段
// nil表示请求中未携带该字段,保持原值不变
type BookPatch struct {
	Title       *string
	Author      *string
	ISBN        *string
	Price       *int
	PublishDate *time.Time
}

// ApplyPatch 应用部分更新(PATCH语义)
// 只覆盖非nil字段,缺席字段保持不变
func (b *Book) ApplyPatch(p BookPatch) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.PublishDate != nil {
		b.PublishDate = *p.PublishDate
	}
	b.UpdatedAt = time.Now()
}

// Overwrite 全量覆盖详情字段(PUT语义)
func (d *BookDetail) Overwrite(description, language string, pageCount int, publisher, coverImageURL, edition string) {
	d.Description = description
	d.Language = language
	d.PageCount = pageCount
	d.Publisher = publisher
	d.CoverImageURL = coverImageURL
	d.Edition = edition
}

// DetailPatch 图书详情部分更新字段
type DetailPatch struct {
	Description   *string
	Language      *string
	PageCount     *int
	Publisher     *string
	CoverImageURL *string
	Edition       *string
}

// ApplyPatch 应用详情部分更新
func (d *BookDetail) ApplyPatch(p DetailPatch) {
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Language != nil {
		d.Language = *p.Language
	}
	if p.PageCount != nil {
		d.PageCount = *p.PageCount
	}
	if p.Publisher != nil {
		d.Publisher = *p.Publisher
	}
	if p.CoverImageURL != nil {
		d.CoverImageURL = *p.CoverImageURL
	}
	if p.Edition != nil {
		d.Edition = *p.Edition
	}
}
