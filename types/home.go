package types

import (
	"Shelf/models"
	"Shelf/pkg/paginate"
)

// HomeResponse 首页：已发布商品、全部标签与站点信息
type HomeResponse struct {
	Products *paginate.Page[ProductCard] `json:"products"`
	Tags     []*models.Tag               `json:"tags"`
	Settings map[string]string           `json:"settings"`
}

type DashboardStats struct {
	TotalProducts     int64             `json:"total_products"`
	PublishedProducts int64             `json:"published_products"`
	DraftProducts     int64             `json:"draft_products"`
	TotalTags         int64             `json:"total_tags"`
	RecentProducts    []*models.Product `json:"recent_products"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
