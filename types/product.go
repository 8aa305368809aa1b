package types

import (
	"time"

	"Shelf/models"
	"Shelf/pkg/toc"

	"github.com/shopspring/decimal"
)

// ProductRequest 后台创建/更新商品
// Slug 与 MetaTitle 为 nil 表示更新时保留原值
type ProductRequest struct {
	Name            string           `json:"name" validate:"required,max=255"`
	Slug            *string          `json:"slug" validate:"omitempty,max=255,slug"`
	Price           *decimal.Decimal `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"original_price"`
	Rating          *decimal.Decimal `json:"rating"`
	ReviewCount     int              `json:"review_count" validate:"min=0"`
	AffiliateLink   string           `json:"affiliate_link" validate:"required,http_url"`
	MainImage       string           `json:"main_image" validate:"omitempty,max=1024"`
	GalleryImages   []string         `json:"gallery_images" validate:"omitempty,dive,required,max=1024"`
	Description     string           `json:"description" validate:"required"`
	MetaTitle       *string          `json:"meta_title" validate:"omitempty,max=255"`
	MetaDescription string           `json:"meta_description" validate:"omitempty,max=500"`
	Status          string           `json:"status" validate:"required"`
	SortOrder       int              `json:"sort_order" validate:"min=0"`
	Tags            []uint64         `json:"tags"`
}

// TagRef 列表中内嵌的标签
type TagRef struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

func NewTagRefs(tags []*models.Tag) []TagRef {
	refs := make([]TagRef, 0, len(tags))
	for _, t := range tags {
		refs = append(refs, TagRef{ID: t.ID, Name: t.Name, Slug: t.Slug, Color: t.Color})
	}
	return refs
}

// ProductCard 前台列表卡片
type ProductCard struct {
	ID                 uint64              `json:"id"`
	Name               string              `json:"name"`
	Slug               string              `json:"slug"`
	Price              decimal.Decimal     `json:"price"`
	OriginalPrice      decimal.NullDecimal `json:"original_price"`
	DiscountPercentage int                 `json:"discount_percentage"`
	Rating             decimal.Decimal     `json:"rating"`
	ReviewCount        int                 `json:"review_count"`
	MainImage          *string             `json:"main_image"`
	MetaDescription    *string             `json:"meta_description"`
	Tags               []TagRef            `json:"tags"`
}

func NewProductCard(p *models.Product) ProductCard {
	return ProductCard{
		ID:                 p.ID,
		Name:               p.Name,
		Slug:               p.Slug,
		Price:              p.Price,
		OriginalPrice:      p.OriginalPrice,
		DiscountPercentage: p.DiscountPercentage(),
		Rating:             p.Rating,
		ReviewCount:        p.ReviewCount,
		MainImage:          p.MainImage,
		MetaDescription:    p.MetaDescription,
		Tags:               NewTagRefs(p.Tags),
	}
}

// PublicProduct 前台商品详情
type PublicProduct struct {
	ID                 uint64              `json:"id"`
	Name               string              `json:"name"`
	Slug               string              `json:"slug"`
	Price              decimal.Decimal     `json:"price"`
	OriginalPrice      decimal.NullDecimal `json:"original_price"`
	DiscountPercentage int                 `json:"discount_percentage"`
	Rating             decimal.Decimal     `json:"rating"`
	ReviewCount        int                 `json:"review_count"`
	MainImage          *string             `json:"main_image"`
	GalleryImages      []string            `json:"gallery_images"`
	Description        string              `json:"description"`
	Toc                []toc.Entry         `json:"toc"`
	MetaTitle          *string             `json:"meta_title"`
	MetaDescription    *string             `json:"meta_description"`
	ShareRef           string              `json:"share_ref"`
	Tags               []TagRef            `json:"tags"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func NewPublicProduct(p *models.Product, shareRef string) *PublicProduct {
	gallery := []string(p.GalleryImages)
	if gallery == nil {
		gallery = make([]string, 0)
	}
	return &PublicProduct{
		ID:                 p.ID,
		Name:               p.Name,
		Slug:               p.Slug,
		Price:              p.Price,
		OriginalPrice:      p.OriginalPrice,
		DiscountPercentage: p.DiscountPercentage(),
		Rating:             p.Rating,
		ReviewCount:        p.ReviewCount,
		MainImage:          p.MainImage,
		GalleryImages:      gallery,
		Description:        p.Description,
		Toc:                toc.Build(p.Description),
		MetaTitle:          p.MetaTitle,
		MetaDescription:    p.MetaDescription,
		ShareRef:           shareRef,
		Tags:               NewTagRefs(p.Tags),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
