package dao

import (
	"Shelf/models"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagDAO struct {
	Repo[models.Tag]
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{Repo: NewRepo[models.Tag](db)}
}

func (d *TagDAO) Tx(tx *gorm.DB) *TagDAO {
	return &TagDAO{Repo: NewRepo[models.Tag](tx)}
}

func (d *TagDAO) Create(ctx context.Context, tag *models.Tag) error {
	return d.Db.WithContext(ctx).Create(tag).Error
}

func (d *TagDAO) FindForUpdate(ctx context.Context, id uint64) (*models.Tag, error) {
	var tag models.Tag
	err := d.Db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Update 全字段更新，返回受影响行数
func (d *TagDAO) Update(ctx context.Context, tag *models.Tag) (int64, error) {
	res := d.Db.WithContext(ctx).Model(tag).Select("*").Omit("created_at").Updates(tag)
	return res.RowsAffected, res.Error
}

func (d *TagDAO) Delete(ctx context.Context, id uint64) (int64, error) {
	res := d.Db.WithContext(ctx).Where("id = ?", id).Delete(&models.Tag{})
	return res.RowsAffected, res.Error
}

func (d *TagDAO) SlugExists(ctx context.Context, slug string, exceptID uint64) (bool, error) {
	var count int64
	q := d.Db.WithContext(ctx).Model(&models.Tag{}).Where("slug = ?", slug)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// Page 按名称排序分页
func (d *TagDAO) Page(ctx context.Context, limit, offset int) ([]*models.Tag, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).Model(&models.Tag{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	tags := make([]*models.Tag, 0)
	if total == 0 {
		return tags, 0, nil
	}
	err := d.Db.WithContext(ctx).Order("name ASC").Order("id ASC").Limit(limit).Offset(offset).Find(&tags).Error
	return tags, total, err
}

// All 全部标签，按名称排序
func (d *TagDAO) All(ctx context.Context) ([]*models.Tag, error) {
	tags := make([]*models.Tag, 0)
	err := d.Db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&tags).Error
	return tags, err
}

// ExistingIDs 返回 ids 中实际存在的标签 ID
func (d *TagDAO) ExistingIDs(ctx context.Context, ids []uint64) ([]uint64, error) {
	found := make([]uint64, 0, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	err := d.Db.WithContext(ctx).Model(&models.Tag{}).Where("id IN ?", ids).Pluck("id", &found).Error
	return found, err
}
