package types

import "Shelf/models"

type TagRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Slug  string `json:"slug" validate:"omitempty,max=255,slug"`
	Color string `json:"color" validate:"omitempty,max=32,color"`
}

// TagDetail 后台标签详情，附带关联商品
type TagDetail struct {
	*models.Tag
	Products []*models.Product `json:"products"`
}
