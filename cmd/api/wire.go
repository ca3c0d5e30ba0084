//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()
//
// 核心概念：
// - Provider: 提供依赖的构造函数（如NewBookRepository）
// - Injector: 声明最终要构造的目标类型（如*gin.Engine）
// - wire.Build(): 告诉Wire如何组装依赖链

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/validator"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load, // 加载配置文件
	mysql.NewDB, // 创建MySQL连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository, // 图书仓储
	mysql.NewTxManager,      // 事务管理器
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService, // 图书领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewCreateBookUseCase,      // 创建图书用例
	appbook.NewListBooksUseCase,       // 图书列表用例
	appbook.NewGetBookUseCase,         // 图书查询用例
	appbook.NewSearchBooksUseCase,     // 图书检索用例
	appbook.NewUpdateBookUseCase,      // 全量更新用例
	appbook.NewPatchBookUseCase,       // 部分更新用例
	appbook.NewPatchBookDetailUseCase, // 详情更新用例
	appbook.NewDeleteBookUseCase,      // 删除图书用例
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler, // 图书处理器
)

// provideGinEngine 创建并配置Gin引擎
// 校验规则注册、指标初始化、路由注册都在此完成(复用main.go中的registerRoutes),
// 保持两种注入方式行为一致
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
) (*gin.Engine, error) {
	if err := validator.Setup(); err != nil {
		return nil, err
	}
	metrics.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.GinMiddleware())

	registerRoutes(r, bookHandler)

	return r, nil
}

// InitializeApp 初始化整个应用
// Wire会在编译期分析依赖链并在wire_gen.go中生成初始化代码:
// *gin.Engine → *handler.BookHandler → 各UseCase → book.Service
// → book.Repository → *gorm.DB → *config.Config
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)

	// 占位返回值,实际运行时由wire_gen.go替代
	return nil, nil
}
