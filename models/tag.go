package models

import (
	"time"

	"Shelf/pkg/slug"
)

const DefaultTagColor = "#6b7280"

type Tag struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name      string    `gorm:"size:255;not null;column:name" json:"name"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex:uk_tags_slug;column:slug" json:"slug"`
	Color     string    `gorm:"size:32;not null;default:#6b7280;column:color" json:"color"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// ProductsCount 仅在列表查询时填充
	ProductsCount int64 `gorm:"-" json:"products_count"`
}

func (Tag) TableName() string {
	return "tags"
}

func (t *Tag) Derive() {
	if t.Slug == "" {
		t.Slug = slug.Make(t.Name)
	}
	if t.Color == "" {
		t.Color = DefaultTagColor
	}
}

// ProductTag 商品与标签的关联表，记录挂载时间
type ProductTag struct {
	ProductID uint64    `gorm:"primaryKey;autoIncrement:false;column:product_id"`
	TagID     uint64    `gorm:"primaryKey;autoIncrement:false;index:idx_product_tag_tag_id;column:tag_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (ProductTag) TableName() string {
	return "product_tag"
}
