package service

import (
	"context"
	"errors"
	"strings"

	"Shelf/dao"
	"Shelf/dao/cache"
	"Shelf/models"
	"Shelf/pkg/log"
	"Shelf/pkg/paginate"
	"Shelf/types"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const AdminProductsPerPage = 12

const (
	msgSlugTaken     = "The slug has already been taken."
	msgSlugUnderived = "The slug could not be generated from the name, please enter one."
	msgSlugRequired  = "The slug field is required."
	msgTagsInvalid   = "The selected tags are invalid."
)

type ProductService struct {
	DB            *gorm.DB
	ProductDAO    *dao.ProductDAO
	TagDAO        *dao.TagDAO
	ProductTagDAO *dao.ProductTagDAO
	CatalogCache  *cache.CatalogStorage
}

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	Create(ctx context.Context, req *types.ProductRequest) (*models.Product, error)
	Update(ctx context.Context, id uint64, req *types.ProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*models.Product, error)
	AdminList(ctx context.Context, page int, path string) (*paginate.Page[*models.Product], error)
}

// Create 校验、派生 slug/meta_title 后写入商品并挂载标签，整体在一个事务内
func (s *ProductService) Create(ctx context.Context, req *types.ProductRequest) (*models.Product, error) {
	normalizeProductRequest(req)
	ve := validateProduct(req)

	product := &models.Product{}
	applyProductRequest(product, req)
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	product.MetaTitle = req.MetaTitle
	product.DeriveOnCreate()

	tagIDs := uniqueIDs(req.Tags)
	if err := checkRefs(ctx, s.ProductDAO, s.TagDAO, ve, product, tagIDs); err != nil {
		return nil, err
	}
	if err := ve.OrNil(); err != nil {
		return nil, err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ProductDAO.Tx(tx).Create(ctx, product); err != nil {
			return err
		}
		return s.ProductTagDAO.Tx(tx).Attach(ctx, product.ID, tagIDs)
	})
	if err != nil {
		return nil, duplicateSlug(err)
	}

	s.CatalogCache.Invalidate(ctx)
	log.L.Info("product created", zap.Uint64("id", product.ID), zap.String("slug", product.Slug))
	return s.Get(ctx, product.ID)
}

// Update 名称变化且 slug/meta_title 为空时才重新派生；标签按集合差同步。
// 读取、校验与写入都在同一事务内，行锁保证并发删除后不会把商品写回来
func (s *ProductService) Update(ctx context.Context, id uint64, req *types.ProductRequest) (*models.Product, error) {
	normalizeProductRequest(req)
	ve := validateProduct(req)
	tagIDs := uniqueIDs(req.Tags)

	var product *models.Product
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := s.ProductDAO.Tx(tx)
		var err error
		product, err = products.FindForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		previousName := product.Name
		applyProductRequest(product, req)
		if req.Slug != nil {
			product.Slug = *req.Slug
		}
		if req.MetaTitle != nil {
			product.MetaTitle = req.MetaTitle
		}
		product.DeriveOnRename(previousName)
		if product.MetaTitle != nil && *product.MetaTitle == "" {
			product.MetaTitle = nil
		}
		if product.Slug == "" && product.Name == previousName && !ve.Has("slug") {
			ve.Add("slug", msgSlugRequired)
		}

		if err := checkRefs(ctx, products, s.TagDAO.Tx(tx), ve, product, tagIDs); err != nil {
			return err
		}
		if err := ve.OrNil(); err != nil {
			return err
		}

		rows, err := products.Update(ctx, product)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrProductNotFound
		}
		return s.syncTags(ctx, s.ProductTagDAO.Tx(tx), product.ID, tagIDs)
	})
	if err != nil {
		return nil, duplicateSlug(err)
	}

	s.CatalogCache.Invalidate(ctx)
	log.L.Info("product updated", zap.Uint64("id", product.ID), zap.String("slug", product.Slug))
	return s.Get(ctx, product.ID)
}

// Delete 先解除全部标签关联再删除商品
func (s *ProductService) Delete(ctx context.Context, id uint64) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ProductTagDAO.Tx(tx).DetachProduct(ctx, id); err != nil {
			return err
		}
		rows, err := s.ProductDAO.Tx(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.CatalogCache.Invalidate(ctx)
	log.L.Info("product deleted", zap.Uint64("id", id))
	return nil
}

func (s *ProductService) Get(ctx context.Context, id uint64) (*models.Product, error) {
	product, err := s.ProductDAO.FindWithTags(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// AdminList 全部状态，最新创建在前
func (s *ProductService) AdminList(ctx context.Context, page int, path string) (*paginate.Page[*models.Product], error) {
	page = paginate.Normalize(page)
	products, total, err := s.ProductDAO.AdminPage(ctx, AdminProductsPerPage, paginate.Offset(page, AdminProductsPerPage))
	if err != nil {
		return nil, err
	}
	return paginate.New(products, total, page, AdminProductsPerPage, path), nil
}

// syncTags 让商品的标签恰好等于 desired，交集部分不动以保留原挂载时间
func (s *ProductService) syncTags(ctx context.Context, pt *dao.ProductTagDAO, productID uint64, desired []uint64) error {
	current, err := pt.TagIDs(ctx, productID)
	if err != nil {
		return err
	}
	attach, detach := planTagSync(current, desired)
	if err := pt.Detach(ctx, productID, detach); err != nil {
		return err
	}
	return pt.Attach(ctx, productID, attach)
}

// planTagSync 返回需要挂载的 desired−current 与需要解除的 current−desired
func planTagSync(current, desired []uint64) (attach, detach []uint64) {
	have := make(map[uint64]struct{}, len(current))
	for _, id := range current {
		have[id] = struct{}{}
	}
	want := make(map[uint64]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
		if _, ok := have[id]; !ok {
			attach = append(attach, id)
		}
	}
	for _, id := range current {
		if _, ok := want[id]; !ok {
			detach = append(detach, id)
		}
	}
	return attach, detach
}

// checkRefs 校验 slug 唯一与标签存在
func checkRefs(ctx context.Context, products *dao.ProductDAO, tags *dao.TagDAO, ve *ValidationError, product *models.Product, tagIDs []uint64) error {
	if !ve.Has("slug") {
		switch {
		case product.Slug == "":
			if !ve.Has("name") {
				ve.Add("slug", msgSlugUnderived)
			}
		case len(product.Slug) > 255:
			ve.Add("slug", "The slug may not be greater than 255 characters.")
		default:
			taken, err := products.SlugExists(ctx, product.Slug, product.ID)
			if err != nil {
				return err
			}
			if taken {
				ve.Add("slug", msgSlugTaken)
			}
		}
	}

	if len(tagIDs) > 0 {
		found, err := tags.ExistingIDs(ctx, tagIDs)
		if err != nil {
			return err
		}
		if len(found) != len(tagIDs) {
			ve.Add("tags", msgTagsInvalid)
		}
	}
	return nil
}

// duplicateSlug 并发写入时唯一索引冲突转为 slug 校验错误
func duplicateSlug(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		ve := NewValidationError()
		ve.Add("slug", msgSlugTaken)
		return ve
	}
	return err
}

func normalizeProductRequest(req *types.ProductRequest) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Slug != nil {
		v := strings.TrimSpace(*req.Slug)
		req.Slug = &v
	}
	if req.MetaTitle != nil {
		v := strings.TrimSpace(*req.MetaTitle)
		req.MetaTitle = &v
	}
	req.AffiliateLink = strings.TrimSpace(req.AffiliateLink)
	req.MainImage = strings.TrimSpace(req.MainImage)
	req.MetaDescription = strings.TrimSpace(req.MetaDescription)
	req.Status = strings.TrimSpace(req.Status)
	gallery := make([]string, 0, len(req.GalleryImages))
	for _, img := range req.GalleryImages {
		gallery = append(gallery, strings.TrimSpace(img))
	}
	req.GalleryImages = gallery
}

// applyProductRequest 写入除 slug/meta_title 以外的字段
func applyProductRequest(p *models.Product, req *types.ProductRequest) {
	p.Name = req.Name
	if req.Price != nil {
		p.Price = req.Price.Round(2)
	}
	p.OriginalPrice = decimal.NullDecimal{}
	if req.OriginalPrice != nil {
		p.OriginalPrice = decimal.NewNullDecimal(req.OriginalPrice.Round(2))
	}
	p.Rating = decimal.Zero
	if req.Rating != nil {
		p.Rating = req.Rating.Round(1)
	}
	p.ReviewCount = req.ReviewCount
	p.AffiliateLink = req.AffiliateLink
	p.MainImage = nilIfEmpty(req.MainImage)
	p.GalleryImages = req.GalleryImages
	p.Description = req.Description
	p.MetaDescription = nilIfEmpty(req.MetaDescription)
	p.Status = req.Status
	p.SortOrder = req.SortOrder
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// uniqueIDs 去重并保持顺序
func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
