package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createBookUseCase  *appbook.CreateBookUseCase
	listBooksUseCase   *appbook.ListBooksUseCase
	getBookUseCase     *appbook.GetBookUseCase
	searchBooksUseCase *appbook.SearchBooksUseCase
	updateBookUseCase  *appbook.UpdateBookUseCase
	patchBookUseCase   *appbook.PatchBookUseCase
	patchDetailUseCase *appbook.PatchBookDetailUseCase
	deleteBookUseCase  *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBookUseCase *appbook.CreateBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	searchBooksUseCase *appbook.SearchBooksUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	patchBookUseCase *appbook.PatchBookUseCase,
	patchDetailUseCase *appbook.PatchBookDetailUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		createBookUseCase:  createBookUseCase,
		listBooksUseCase:   listBooksUseCase,
		getBookUseCase:     getBookUseCase,
		searchBooksUseCase: searchBooksUseCase,
		updateBookUseCase:  updateBookUseCase,
		patchBookUseCase:   patchBookUseCase,
		patchDetailUseCase: patchDetailUseCase,
		deleteBookUseCase:  deleteBookUseCase,
	}
}

// parseBookID 解析路径中的图书ID
func parseBookID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.BadRequest("无效的图书ID: %s", c.Param("id"))
	}
	return uint(id), nil
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  创建图书及其详情(聚合一体创建,详情必填)
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} book.BookResult
// @Failure      400 {object} response.ErrorObject "参数错误"
// @Failure      409 {object} response.ErrorObject "ISBN已存在"
// @Router       /api/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	// 2. 调用应用层用例
	result, err := h.createBookUseCase.Execute(c.Request.Context(), req.ToParams())
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 新建资源返回201
	c.JSON(http.StatusCreated, result)
}

// ListBooks 查询全部图书
// @Summary      查询全部图书
// @Tags         图书
// @Produce      json
// @Success      200 {array} book.BookResult
// @Router       /api/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	results, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetBookByID 按ID查询图书
// @Summary      按ID查询图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} book.BookResult
// @Failure      404 {object} response.ErrorObject "图书不存在"
// @Router       /api/books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getBookUseCase.ExecuteByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBookByISBN 按ISBN查询图书
// @Summary      按ISBN查询图书
// @Tags         图书
// @Produce      json
// @Param        isbn path string true "ISBN号"
// @Success      200 {object} book.BookResult
// @Failure      404 {object} response.ErrorObject "图书不存在"
// @Router       /api/books/isbn/{isbn} [get]
func (h *BookHandler) GetBookByISBN(c *gin.Context) {
	isbn := c.Param("isbn")

	result, err := h.getBookUseCase.ExecuteByISBN(c.Request.Context(), isbn)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchByAuthor 按作者模糊检索
// @Summary      按作者检索图书
// @Tags         图书
// @Produce      json
// @Param        author query string true "作者关键字"
// @Success      200 {array} book.BookResult
// @Failure      400 {object} response.ErrorObject "缺少检索关键字"
// @Router       /api/books/search/author [get]
func (h *BookHandler) SearchByAuthor(c *gin.Context) {
	author := c.Query("author")
	if author == "" {
		response.Error(c, apperrors.BadRequest("检索参数author不能为空"))
		return
	}

	results, err := h.searchBooksUseCase.ExecuteByAuthor(c.Request.Context(), author)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// SearchByTitle 按书名模糊检索
// @Summary      按书名检索图书
// @Tags         图书
// @Produce      json
// @Param        title query string true "书名关键字"
// @Success      200 {array} book.BookResult
// @Failure      400 {object} response.ErrorObject "缺少检索关键字"
// @Router       /api/books/search/title [get]
func (h *BookHandler) SearchByTitle(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		response.Error(c, apperrors.BadRequest("检索参数title不能为空"))
		return
	}

	results, err := h.searchBooksUseCase.ExecuteByTitle(c.Request.Context(), title)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// UpdateBook 全量更新图书
// @Summary      全量更新图书
// @Description  按PUT语义整体替换图书字段,携带detail时详情全部覆盖
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "图书信息"
// @Success      200 {object} book.BookResult
// @Failure      400 {object} response.ErrorObject "参数错误"
// @Failure      404 {object} response.ErrorObject "图书不存在"
// @Failure      409 {object} response.ErrorObject "ISBN已存在"
// @Router       /api/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), id, req.ToParams())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PatchBook 部分更新图书
// @Summary      部分更新图书
// @Description  按PATCH语义合并字段,载荷中缺席的字段保持不变
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.PatchBookRequest true "待更新字段"
// @Success      200 {object} book.BookResult
// @Failure      400 {object} response.ErrorObject "参数错误"
// @Failure      404 {object} response.ErrorObject "图书不存在"
// @Failure      409 {object} response.ErrorObject "ISBN已存在"
// @Router       /api/books/{id} [patch]
func (h *BookHandler) PatchBook(c *gin.Context) {
	id, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PatchBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.patchBookUseCase.Execute(c.Request.Context(), id, req.ToParams())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PatchBookDetail 部分更新图书详情
// @Summary      部分更新图书详情
// @Description  详情作为子资源单独更新,图书不存在与详情不存在分别返回404
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.PatchBookDetailRequest true "待更新详情字段"
// @Success      200 {object} book.DetailResult
// @Failure      400 {object} response.ErrorObject "参数错误"
// @Failure      404 {object} response.ErrorObject "图书或详情不存在"
// @Router       /api/books/{id}/detail [patch]
func (h *BookHandler) PatchBookDetail(c *gin.Context) {
	id, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PatchBookDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.patchDetailUseCase.Execute(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  级联删除图书及其详情,成功返回204无响应体
// @Tags         图书
// @Param        id path int true "图书ID"
// @Success      204 "删除成功"
// @Failure      404 {object} response.ErrorObject "图书不存在"
// @Router       /api/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
