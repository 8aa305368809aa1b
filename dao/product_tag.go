package dao

import (
	"Shelf/models"
	"context"

	"gorm.io/gorm"
)

// ProductTagDAO 直接操作 product_tag 关联表，保证同步时未变化的关联保留原挂载时间
type ProductTagDAO struct {
	Repo[models.ProductTag]
}

func NewProductTagDAO(db *gorm.DB) *ProductTagDAO {
	return &ProductTagDAO{Repo: NewRepo[models.ProductTag](db)}
}

func (d *ProductTagDAO) Tx(tx *gorm.DB) *ProductTagDAO {
	return &ProductTagDAO{Repo: NewRepo[models.ProductTag](tx)}
}

func (d *ProductTagDAO) TagIDs(ctx context.Context, productID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := d.Db.WithContext(ctx).Model(&models.ProductTag{}).
		Where("product_id = ?", productID).
		Order("tag_id ASC").
		Pluck("tag_id", &ids).Error
	return ids, err
}

func (d *ProductTagDAO) Attach(ctx context.Context, productID uint64, tagIDs []uint64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]*models.ProductTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		rows = append(rows, &models.ProductTag{ProductID: productID, TagID: id})
	}
	return d.Db.WithContext(ctx).Create(&rows).Error
}

func (d *ProductTagDAO) Detach(ctx context.Context, productID uint64, tagIDs []uint64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Where("product_id = ? AND tag_id IN ?", productID, tagIDs).
		Delete(&models.ProductTag{}).Error
}

func (d *ProductTagDAO) DetachProduct(ctx context.Context, productID uint64) error {
	return d.Db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductTag{}).Error
}

func (d *ProductTagDAO) DetachTag(ctx context.Context, tagID uint64) error {
	return d.Db.WithContext(ctx).Where("tag_id = ?", tagID).Delete(&models.ProductTag{}).Error
}

// CountByTags 统计每个标签关联的商品数，tagIDs 为空时统计全部
func (d *ProductTagDAO) CountByTags(ctx context.Context, tagIDs []uint64) (map[uint64]int64, error) {
	var rows []struct {
		TagID uint64
		Total int64
	}
	q := d.Db.WithContext(ctx).Model(&models.ProductTag{}).Select("tag_id, COUNT(*) AS total")
	if len(tagIDs) > 0 {
		q = q.Where("tag_id IN ?", tagIDs)
	}
	if err := q.Group("tag_id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[uint64]int64, len(rows))
	for _, r := range rows {
		counts[r.TagID] = r.Total
	}
	return counts, nil
}
