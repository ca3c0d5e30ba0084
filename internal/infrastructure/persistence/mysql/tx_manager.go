package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txCtxKey 事务DB的context键（非导出类型，避免键冲突）
type txCtxKey struct{}

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 嵌套事务时GORM自动使用Savepoint
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn内的所有Repository操作都在同一事务中执行：
// fn返回error时自动ROLLBACK，返回nil时自动COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(txCtx context.Context) error {
//	    b, err := svc.UpdateBook(txCtx, id, params)
//	    return err // nil则提交,非nil则回滚
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入到Context中，Repository的getDB方法从context提取
		txCtx := context.WithValue(ctx, txCtxKey{}, tx)
		return fn(txCtx)
	})
}
