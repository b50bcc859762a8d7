package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/jinhyuk9714/Back-likelion/domain"
)

type txKey struct{}

type transactor struct {
	DB *gorm.DB
}

var _ domain.Transactor = (*transactor)(nil)

// NewTransactor creates a Transactor whose transactions are picked up by every repository in this package.
func NewTransactor(db *gorm.DB) *transactor {
	return &transactor{DB: db}
}

// WithinTransaction 在同一个事务中执行 fn, fn 返回错误时回滚
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction carried by ctx, or db bound to ctx.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
