package book

import (
	"context"
	"regexp"
	"time"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则:ISBN格式与唯一性、出版日期校验、全量/部分更新语义
// 2. 不依赖具体的Repository实现(依赖倒置)
// 3. 事务边界由应用层用例通过TxManager划定,服务内只做规则与编排
type Service interface {
	// CreateBook 创建图书及其详情
	// 业务规则:
	// - ISBN格式必须合法(978/979前缀+10位数字)
	// - 出版日期不能在未来
	// - ISBN不能与已有图书重复
	// - 详情在创建时强制挂载(聚合一体创建)
	CreateBook(ctx context.Context, p CreateBookParams) (*Book, error)

	// GetAllBooks 查询全部图书
	GetAllBooks(ctx context.Context) ([]*Book, error)

	// GetBookByID 根据ID获取图书(含详情)
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// GetBookByISBN 根据ISBN获取图书(含详情)
	GetBookByISBN(ctx context.Context, isbn string) (*Book, error)

	// SearchBooksByAuthor 作者子串搜索
	SearchBooksByAuthor(ctx context.Context, author string) ([]*Book, error)

	// SearchBooksByTitle 书名子串搜索
	SearchBooksByTitle(ctx context.Context, title string) ([]*Book, error)

	// UpdateBook 全量替换图书字段(PUT语义)
	// ISBN变更且与其他图书冲突时,在任何字段写入前返回冲突错误
	// 携带详情载荷且图书已有详情时,详情所有字段无条件覆盖
	UpdateBook(ctx context.Context, id uint, p UpdateBookParams) (*Book, error)

	// PatchBook 部分更新图书(PATCH语义)
	// 只覆盖载荷中出现的字段;ISBN变更执行与UpdateBook相同的唯一性检查
	// 详情子载荷存在且图书已有详情时,对详情逐字段应用相同规则;无详情时静默跳过
	PatchBook(ctx context.Context, id uint, p PatchBookParams) (*Book, error)

	// PatchBookDetail 直接部分更新详情子资源
	// 图书不存在返回ErrBookNotFound;图书存在但无详情返回ErrDetailNotFound
	PatchBookDetail(ctx context.Context, id uint, p DetailPatch) (*BookDetail, error)

	// DeleteBook 删除图书(级联删除详情)
	DeleteBook(ctx context.Context, id uint) error
}

// DetailParams 详情创建/覆盖参数
type DetailParams struct {
	Description   string
	Language      string
	PageCount     int
	Publisher     string
	CoverImageURL string
	Edition       string
}

// CreateBookParams 创建图书参数(详情必填)
type CreateBookParams struct {
	Title       string
	Author      string
	ISBN        string
	Price       int
	PublishDate time.Time
	Detail      DetailParams
}

// UpdateBookParams 全量更新参数
// Detail为nil表示请求未携带详情载荷,已存储的详情保持不变
type UpdateBookParams struct {
	Title       string
	Author      string
	ISBN        string
	Price       int
	PublishDate time.Time
	Detail      *DetailParams
}

// PatchBookParams 部分更新参数
// nil字段表示缺席,保持原值
type PatchBookParams struct {
	BookPatch
	Detail *DetailPatch
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书及其详情
func (s *service) CreateBook(ctx context.Context, p CreateBookParams) (*Book, error) {
	// 1. ISBN格式校验
	if !isValidISBN(p.ISBN) {
		return nil, ErrInvalidISBN
	}

	// 2. 出版日期校验(不能在未来)
	if p.PublishDate.After(time.Now()) {
		return nil, ErrFuturePublishDate
	}

	// 3. ISBN唯一性预检查(数据库唯一索引兜底并发竞态)
	exists, err := s.repo.ExistsByISBN(ctx, p.ISBN)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrISBNDuplicate
	}

	// 4. 创建聚合:图书+详情一体挂载
	b := NewBook(p.Title, p.Author, p.ISBN, p.Price, p.PublishDate)
	b.AttachDetail(NewBookDetail(
		p.Detail.Description,
		p.Detail.Language,
		p.Detail.PageCount,
		p.Detail.Publisher,
		p.Detail.CoverImageURL,
		p.Detail.Edition,
	))

	// 5. 持久化(两张表同一事务写入)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetAllBooks 查询全部图书
func (s *service) GetAllBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.FindAll(ctx)
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByIDWithDetail(ctx, id)
}

// GetBookByISBN 根据ISBN获取图书
func (s *service) GetBookByISBN(ctx context.Context, isbn string) (*Book, error) {
	return s.repo.FindByISBNWithDetail(ctx, isbn)
}

// SearchBooksByAuthor 作者子串搜索
func (s *service) SearchBooksByAuthor(ctx context.Context, author string) ([]*Book, error) {
	return s.repo.SearchByAuthor(ctx, author)
}

// SearchBooksByTitle 书名子串搜索
func (s *service) SearchBooksByTitle(ctx context.Context, title string) ([]*Book, error) {
	return s.repo.SearchByTitle(ctx, title)
}

// UpdateBook 全量替换图书字段
func (s *service) UpdateBook(ctx context.Context, id uint, p UpdateBookParams) (*Book, error) {
	// 1. 查询图书(含详情)
	b, err := s.repo.FindByIDWithDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. ISBN变更时的格式与唯一性检查,必须发生在任何字段写入之前
	if p.ISBN != b.ISBN {
		if err := s.checkISBNAvailable(ctx, p.ISBN); err != nil {
			return nil, err
		}
	}

	// 3. 全量覆盖图书字段
	b.Replace(p.Title, p.Author, p.ISBN, p.Price, p.PublishDate)

	// 4. 详情载荷存在且已有详情时,全部字段无条件覆盖
	if p.Detail != nil && b.HasDetail() {
		b.Detail.Overwrite(
			p.Detail.Description,
			p.Detail.Language,
			p.Detail.PageCount,
			p.Detail.Publisher,
			p.Detail.CoverImageURL,
			p.Detail.Edition,
		)
	}

	// 5. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// PatchBook 部分更新图书
func (s *service) PatchBook(ctx context.Context, id uint, p PatchBookParams) (*Book, error) {
	b, err := s.repo.FindByIDWithDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	// ISBN携带且实际变更时才触发唯一性检查
	if p.ISBN != nil && *p.ISBN != b.ISBN {
		if err := s.checkISBNAvailable(ctx, *p.ISBN); err != nil {
			return nil, err
		}
	}

	b.ApplyPatch(p.BookPatch)

	// 详情子载荷:仅在图书已有详情时合并,否则静默跳过
	if p.Detail != nil && b.HasDetail() {
		b.Detail.ApplyPatch(*p.Detail)
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// PatchBookDetail 直接部分更新详情子资源
func (s *service) PatchBookDetail(ctx context.Context, id uint, p DetailPatch) (*BookDetail, error) {
	b, err := s.repo.FindByIDWithDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	// 与PatchBook不同:无详情是一种独立的NOT_FOUND
	if !b.HasDetail() {
		return nil, ErrDetailNotFound
	}

	b.Detail.ApplyPatch(p)

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b.Detail, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// checkISBNAvailable ISBN变更检查:格式合法且未被占用
func (s *service) checkISBNAvailable(ctx context.Context, isbn string) error {
	if !isValidISBN(isbn) {
		return ErrInvalidISBN
	}
	exists, err := s.repo.ExistsByISBN(ctx, isbn)
	if err != nil {
		return err
	}
	if exists {
		return ErrISBNDuplicate
	}
	return nil
}

// isbnPattern ISBN-13格式:978或979开头,后接10位数字
var isbnPattern = regexp.MustCompile(`^(978|979)[0-9]{10}$`)

// isValidISBN 校验ISBN格式
// transport层绑定校验已拦截一次,此处为领域不变式的最终防线
func isValidISBN(isbn string) bool {
	return isbnPattern.MatchString(isbn)
}
