package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true, // 唯一索引冲突翻译为gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// AutoMigrate 自动迁移表结构
// 说明：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
// 导出供sqlite测试环境复用
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
		&BookDetailModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/book/entity.go是领域实体，不依赖GORM
// 3. ISBN有唯一索引，兜底并发"检查-插入"竞态
// 4. 与BookDetailModel一对一，外键在详情侧（关系拥有方）
type BookModel struct {
	ID          uint             `gorm:"primaryKey"`
	Title       string           `gorm:"index;size:200;not null;comment:书名"`
	Author      string           `gorm:"index;size:100;not null;comment:作者"`
	ISBN        string           `gorm:"uniqueIndex;size:13;not null;comment:ISBN号"`
	Price       int              `gorm:"not null;comment:价格"`
	PublishDate time.Time        `gorm:"not null;comment:出版日期"`
	Detail      *BookDetailModel `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time        `gorm:"comment:创建时间"`
	UpdatedAt   time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BookDetailModel GORM图书详情模型
// 设计说明:
// 1. BookID唯一索引保证一本书至多一条详情
// 2. 外键级联删除兜底，应用层删除时仍显式删除详情行（不依赖DB方言行为）
type BookDetailModel struct {
	ID            uint   `gorm:"primaryKey"`
	BookID        uint   `gorm:"uniqueIndex;not null;comment:所属图书ID"`
	Description   string `gorm:"type:text;not null;comment:图书描述"`
	Language      string `gorm:"size:50;comment:语言"`
	PageCount     int    `gorm:"not null;comment:页数"`
	Publisher     string `gorm:"size:100;comment:出版社"`
	CoverImageURL string `gorm:"size:500;comment:封面图片URL"`
	Edition       string `gorm:"size:50;comment:版次"`
}

// TableName 指定表名
func (BookDetailModel) TableName() string {
	return "book_details"
}
