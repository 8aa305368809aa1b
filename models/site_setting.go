package models

import "time"

const (
	SettingTypeText  = "text"
	SettingGroupMain = "general"
)

// SiteSetting 站点配置，key 唯一
type SiteSetting struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Key       string    `gorm:"size:255;not null;uniqueIndex:uk_site_settings_key;column:key" json:"key"`
	Value     *string   `gorm:"type:text;column:value" json:"value"`
	Type      string    `gorm:"size:32;not null;default:text;column:type" json:"type"`
	Group     string    `gorm:"size:64;not null;default:general;column:group" json:"group"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
