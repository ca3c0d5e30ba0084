package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/validator"
)

// main 主程序入口
// 说明：手动依赖注入,与wire.go中的Wire配置等价,二选一使用
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 注册自定义校验规则(isbn、pastdate)
	if err := validator.Setup(); err != nil {
		log.Fatalf("注册校验规则失败: %v", err)
	}

	// 4. 初始化Prometheus指标
	metrics.Init()

	// 5. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)
	txManager := mysql.NewTxManager(db)

	// 领域层
	bookService := book.NewService(bookRepo)

	// 应用层
	createBookUseCase := appbook.NewCreateBookUseCase(bookService, txManager)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService)
	searchBooksUseCase := appbook.NewSearchBooksUseCase(bookService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService, txManager)
	patchBookUseCase := appbook.NewPatchBookUseCase(bookService, txManager)
	patchDetailUseCase := appbook.NewPatchBookDetailUseCase(bookService, txManager)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService, txManager)

	// 接口层
	bookHandler := handler.NewBookHandler(
		createBookUseCase,
		listBooksUseCase,
		getBookUseCase,
		searchBooksUseCase,
		updateBookUseCase,
		patchBookUseCase,
		patchDetailUseCase,
		deleteBookUseCase,
	)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.GinMiddleware())

	// 7. 注册路由
	registerRoutes(r, bookHandler)

	// 8. 启动服务(支持优雅停机)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("\n🚀 服务启动成功！\n")
		fmt.Printf("   访问地址: http://localhost%s\n", addr)
		fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
		fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
		fmt.Printf("   指标采集: http://localhost%s/metrics\n", addr)
		fmt.Printf("\n按Ctrl+C停止服务\n\n")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("收到退出信号,开始优雅停机...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("优雅停机失败: %v", err)
	}

	log.Println("服务已退出")
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, bookHandler *handler.BookHandler) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", metrics.Handler())

	// Swagger文档
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 图书模块
	books := r.Group("/api/books")
	{
		books.POST("", bookHandler.CreateBook)
		books.GET("", bookHandler.ListBooks)
		books.GET("/:id", bookHandler.GetBookByID)
		books.GET("/isbn/:isbn", bookHandler.GetBookByISBN)
		books.GET("/search/author", bookHandler.SearchByAuthor)
		books.GET("/search/title", bookHandler.SearchByTitle)
		books.PUT("/:id", bookHandler.UpdateBook)
		books.PATCH("/:id", bookHandler.PatchBook)
		books.PATCH("/:id/detail", bookHandler.PatchBookDetail)
		books.DELETE("/:id", bookHandler.DeleteBook)
	}
}
