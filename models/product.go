package models

import (
	"time"

	"Shelf/pkg/slug"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	ProductStatusDraft     = "draft"
	ProductStatusPublished = "published"
	ProductStatusArchived  = "archived"
)

var ProductStatuses = []string{ProductStatusDraft, ProductStatusPublished, ProductStatusArchived}

func ValidProductStatus(s string) bool {
	for _, v := range ProductStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Product 对应数据库中的 products 表
type Product struct {
	ID              uint64                      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name            string                      `gorm:"size:255;not null;column:name" json:"name"`
	Slug            string                      `gorm:"size:255;not null;uniqueIndex:uk_products_slug;column:slug" json:"slug"`
	Price           decimal.Decimal             `gorm:"type:decimal(10,2);not null;column:price" json:"price"`
	OriginalPrice   decimal.NullDecimal         `gorm:"type:decimal(10,2);column:original_price" json:"original_price"`
	Rating          decimal.Decimal             `gorm:"type:decimal(2,1);not null;default:0;column:rating" json:"rating"`
	ReviewCount     int                         `gorm:"not null;default:0;column:review_count" json:"review_count"`
	AffiliateLink   string                      `gorm:"type:text;not null;column:affiliate_link" json:"affiliate_link"`
	MainImage       *string                     `gorm:"size:1024;column:main_image" json:"main_image"`
	GalleryImages   datatypes.JSONSlice[string] `gorm:"column:gallery_images" json:"gallery_images"`
	Description     string                      `gorm:"type:longtext;not null;column:description" json:"description"`
	MetaTitle       *string                     `gorm:"size:255;column:meta_title" json:"meta_title"`
	MetaDescription *string                     `gorm:"size:500;column:meta_description" json:"meta_description"`
	Status          string                      `gorm:"size:16;not null;default:draft;index:idx_products_status;index:idx_products_status_sort,priority:1;column:status" json:"status"`
	SortOrder       int                         `gorm:"not null;default:0;index:idx_products_status_sort,priority:2;column:sort_order" json:"sort_order"`
	CreatedAt       time.Time                   `gorm:"column:created_at;autoCreateTime;index:idx_products_created_at" json:"created_at"`
	UpdatedAt       time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Tags []*Tag `gorm:"many2many:product_tag;joinForeignKey:ProductID;joinReferences:TagID" json:"tags"`
}

func (Product) TableName() string {
	return "products"
}

// DeriveOnCreate fills an empty slug and meta title from the name.
func (p *Product) DeriveOnCreate() {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	if p.MetaTitle == nil || *p.MetaTitle == "" {
		name := p.Name
		p.MetaTitle = &name
	}
}

// DeriveOnRename re-derives slug and meta title from the name, but only when
// the name differs from previousName and the field is currently empty.
// Non-empty values are never overwritten.
func (p *Product) DeriveOnRename(previousName string) {
	if p.Name == previousName {
		return
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	if p.MetaTitle == nil || *p.MetaTitle == "" {
		name := p.Name
		p.MetaTitle = &name
	}
}

func (p *Product) IsPublished() bool {
	return p.Status == ProductStatusPublished
}

// DiscountPercentage 原价高于现价时返回折扣百分比（四舍五入），否则为 0
func (p *Product) DiscountPercentage() int {
	if !p.OriginalPrice.Valid || !p.OriginalPrice.Decimal.GreaterThan(p.Price) {
		return 0
	}
	orig := p.OriginalPrice.Decimal
	return int(orig.Sub(p.Price).Div(orig).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

func (p *Product) TagIDs() []uint64 {
	ids := make([]uint64, 0, len(p.Tags))
	for _, t := range p.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}
