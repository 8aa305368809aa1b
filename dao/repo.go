package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用仓储，按主键读写单表
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// FindByID 查询不到时返回 nil, nil
func (r *Repo[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.Db.WithContext(ctx).Model(new(T)).Count(&total).Error
	return total, err
}
