package dao

import (
	"Shelf/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteSettingDAO struct {
	Repo[models.SiteSetting]
}

func NewSiteSettingDAO(db *gorm.DB) *SiteSettingDAO {
	return &SiteSettingDAO{Repo: NewRepo[models.SiteSetting](db)}
}

func (d *SiteSettingDAO) Tx(tx *gorm.DB) *SiteSettingDAO {
	return &SiteSettingDAO{Repo: NewRepo[models.SiteSetting](tx)}
}

// FindByKey 不存在返回 nil, nil
func (d *SiteSettingDAO) FindByKey(ctx context.Context, key string) (*models.SiteSetting, error) {
	var s models.SiteSetting
	err := d.Db.WithContext(ctx).Where("`key` = ?", key).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert 以 key 为冲突键，存在则覆盖 value/type/group
func (d *SiteSettingDAO) Upsert(ctx context.Context, s *models.SiteSetting) error {
	s.UpdatedAt = time.Now()
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "type", "group", "updated_at"}),
	}).Create(s).Error
}

func (d *SiteSettingDAO) All(ctx context.Context) ([]*models.SiteSetting, error) {
	rows := make([]*models.SiteSetting, 0)
	err := d.Db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}
