package dao

import (
	"Shelf/models"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductDAO struct {
	Repo[models.Product]
}

func NewProductDAO(db *gorm.DB) *ProductDAO {
	return &ProductDAO{Repo: NewRepo[models.Product](db)}
}

// Tx 返回绑定到事务的 DAO
func (d *ProductDAO) Tx(tx *gorm.DB) *ProductDAO {
	return &ProductDAO{Repo: NewRepo[models.Product](tx)}
}

func (d *ProductDAO) preloadTags(db *gorm.DB) *gorm.DB {
	return db.Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("tags.name ASC")
	})
}

// FindWithTags 按 ID 查询并加载标签，不存在返回 nil, nil
func (d *ProductDAO) FindWithTags(ctx context.Context, id uint64) (*models.Product, error) {
	var p models.Product
	err := d.preloadTags(d.Db.WithContext(ctx)).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindBySlug status 为空时不过滤状态
func (d *ProductDAO) FindBySlug(ctx context.Context, slug string, status string) (*models.Product, error) {
	var p models.Product
	q := d.preloadTags(d.Db.WithContext(ctx)).Where("slug = ?", slug)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SlugExists exceptID 非 0 时排除该商品自身
func (d *ProductDAO) SlugExists(ctx context.Context, slug string, exceptID uint64) (bool, error) {
	var count int64
	q := d.Db.WithContext(ctx).Model(&models.Product{}).Where("slug = ?", slug)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (d *ProductDAO) Create(ctx context.Context, p *models.Product) error {
	return d.Db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

// FindForUpdate 事务内加行锁读取，不存在返回 nil, nil
func (d *ProductDAO) FindForUpdate(ctx context.Context, id uint64) (*models.Product, error) {
	var p models.Product
	err := d.Db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update 全字段更新，不写 created_at 也不级联关联；行已不存在时返回 0。
// 与 Save 不同，0 行时不会退化为 INSERT
func (d *ProductDAO) Update(ctx context.Context, p *models.Product) (int64, error) {
	res := d.Db.WithContext(ctx).Model(p).Select("*").Omit(clause.Associations, "created_at").Updates(p)
	return res.RowsAffected, res.Error
}

// Delete 返回受影响行数
func (d *ProductDAO) Delete(ctx context.Context, id uint64) (int64, error) {
	res := d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	return res.RowsAffected, res.Error
}

// AdminPage 全部状态，按创建时间倒序
func (d *ProductDAO) AdminPage(ctx context.Context, limit, offset int) ([]*models.Product, int64, error) {
	return d.page(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC").Order("id DESC")
	}, limit, offset)
}

// PublishedPage 仅已发布，sort_order 升序，同序按创建时间倒序
func (d *ProductDAO) PublishedPage(ctx context.Context, limit, offset int) ([]*models.Product, int64, error) {
	return d.page(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", models.ProductStatusPublished).
			Order("sort_order ASC").
			Order("created_at DESC").
			Order("id DESC")
	}, limit, offset)
}

func (d *ProductDAO) page(ctx context.Context, scope func(*gorm.DB) *gorm.DB, limit, offset int) ([]*models.Product, int64, error) {
	var total int64
	// Count 会自行忽略 ORDER BY
	if err := d.Db.WithContext(ctx).Model(&models.Product{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*models.Product, 0)
	if total == 0 {
		return products, 0, nil
	}
	err := d.preloadTags(d.Db.WithContext(ctx)).
		Scopes(scope).
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	return products, total, err
}

// Recent 最近创建的 n 个商品
func (d *ProductDAO) Recent(ctx context.Context, n int) ([]*models.Product, error) {
	products := make([]*models.Product, 0, n)
	err := d.preloadTags(d.Db.WithContext(ctx)).
		Order("created_at DESC").
		Order("id DESC").
		Limit(n).
		Find(&products).Error
	return products, err
}

func (d *ProductDAO) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).Model(&models.Product{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

// ByTag 某标签下的商品
func (d *ProductDAO) ByTag(ctx context.Context, tagID uint64) ([]*models.Product, error) {
	products := make([]*models.Product, 0)
	err := d.Db.WithContext(ctx).
		Joins("JOIN product_tag ON product_tag.product_id = products.id").
		Where("product_tag.tag_id = ?", tagID).
		Order("products.created_at DESC").
		Find(&products).Error
	return products, err
}
