package service

import (
	"context"
	"encoding/json"
	"errors"

	"Shelf/dao"
	"Shelf/dao/cache"
	"Shelf/models"
	"Shelf/pkg/log"
	"Shelf/pkg/paginate"
	"Shelf/pkg/utils"
	"Shelf/types"

	"go.uber.org/zap"
)

const PublicProductsPerPage = 12

// 首页展示用到的配置及其默认值
var publicSettingDefaults = map[string]string{
	"site_name":            "ShopeeDeals Pro",
	"site_description":     "Your ultimate destination for the best Shopee deals",
	"meta_title":           "ShopeeDeals Pro - Best Deals & Product Reviews",
	"meta_description":     "Discover the best deals on Shopee with our curated product recommendations.",
	"affiliate_disclaimer": "This site contains affiliate links. We may earn a commission when you purchase through these links at no additional cost to you.",
}

type CatalogService struct {
	ProductDAO     *dao.ProductDAO
	TagService     ITagService
	SettingService ISettingService
	CatalogCache   *cache.CatalogStorage
	HashID         *utils.HashID
}

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	PublicList(ctx context.Context, page int, path string) (*paginate.Page[types.ProductCard], error)
	PublicProduct(ctx context.Context, slug string) (*types.PublicProduct, error)
	Home(ctx context.Context, page int, path string) (*types.HomeResponse, error)
	Outbound(ctx context.Context, ref string) (string, error)
	ShareRef(id uint64) string
}

// PublicList 仅已发布商品，sort_order 升序、创建时间倒序；按页缓存
func (s *CatalogService) PublicList(ctx context.Context, page int, path string) (*paginate.Page[types.ProductCard], error) {
	page = paginate.Normalize(page)
	version, cacheable := s.CatalogCache.Version(ctx)
	if cacheable {
		if data, ok := s.CatalogCache.Get(ctx, version, path, page); ok {
			var cached paginate.Page[types.ProductCard]
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	products, total, err := s.ProductDAO.PublishedPage(ctx, PublicProductsPerPage, paginate.Offset(page, PublicProductsPerPage))
	if err != nil {
		return nil, err
	}
	result := paginate.Map(
		paginate.New(products, total, page, PublicProductsPerPage, path),
		func(p *models.Product) types.ProductCard { return types.NewProductCard(p) },
	)

	if cacheable {
		if data, err := json.Marshal(result); err == nil {
			s.CatalogCache.Set(ctx, version, path, page, data)
		}
	}
	return result, nil
}

// PublicProduct 只能访问已发布商品，其他状态视为不存在
func (s *CatalogService) PublicProduct(ctx context.Context, slug string) (*types.PublicProduct, error) {
	product, err := s.ProductDAO.FindBySlug(ctx, slug, models.ProductStatusPublished)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return types.NewPublicProduct(product, s.ShareRef(product.ID)), nil
}

func (s *CatalogService) Home(ctx context.Context, page int, path string) (*types.HomeResponse, error) {
	products, err := s.PublicList(ctx, page, path)
	if err != nil {
		return nil, err
	}
	tags, err := s.TagService.All(ctx)
	if err != nil {
		return nil, err
	}
	settings := make(map[string]string, len(publicSettingDefaults))
	for key, def := range publicSettingDefaults {
		v, err := s.SettingService.Get(ctx, key, def)
		if err != nil {
			log.L.Warn("load setting", zap.String("key", key), zap.Error(err))
		}
		settings[key] = v
	}
	return &types.HomeResponse{Products: products, Tags: tags, Settings: settings}, nil
}

// Outbound 解析分享短串，返回已发布商品的推广链接
func (s *CatalogService) Outbound(ctx context.Context, ref string) (string, error) {
	id, err := s.HashID.Decode(ref)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidRef) {
			return "", ErrProductNotFound
		}
		return "", err
	}
	product, err := s.ProductDAO.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if product == nil || !product.IsPublished() {
		return "", ErrProductNotFound
	}
	log.L.Info("outbound click", zap.Uint64("product_id", id), zap.String("ref", ref))
	return product.AffiliateLink, nil
}

func (s *CatalogService) ShareRef(id uint64) string {
	return s.HashID.Encode(id)
}
