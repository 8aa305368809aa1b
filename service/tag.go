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

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const AdminTagsPerPage = 20

type TagService struct {
	DB            *gorm.DB
	TagDAO        *dao.TagDAO
	ProductDAO    *dao.ProductDAO
	ProductTagDAO *dao.ProductTagDAO
	CatalogCache  *cache.CatalogStorage
}

var _ ITagService = (*TagService)(nil)

type ITagService interface {
	Create(ctx context.Context, req *types.TagRequest) (*models.Tag, error)
	Update(ctx context.Context, id uint64, req *types.TagRequest) (*models.Tag, error)
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*types.TagDetail, error)
	AdminList(ctx context.Context, page int, path string) (*paginate.Page[*models.Tag], error)
	All(ctx context.Context) ([]*models.Tag, error)
}

func (s *TagService) Create(ctx context.Context, req *types.TagRequest) (*models.Tag, error) {
	tag := &models.Tag{}
	if err := applyTag(ctx, s.TagDAO, tag, req); err != nil {
		return nil, err
	}
	if err := s.TagDAO.Create(ctx, tag); err != nil {
		return nil, duplicateSlug(err)
	}
	s.CatalogCache.Invalidate(ctx)
	log.L.Info("tag created", zap.Uint64("id", tag.ID), zap.String("slug", tag.Slug))
	return tag, nil
}

func (s *TagService) Update(ctx context.Context, id uint64, req *types.TagRequest) (*models.Tag, error) {
	var tag *models.Tag
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := s.TagDAO.Tx(tx)
		var err error
		tag, err = tags.FindForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if tag == nil {
			return ErrTagNotFound
		}
		if err := applyTag(ctx, tags, tag, req); err != nil {
			return err
		}
		rows, err := tags.Update(ctx, tag)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrTagNotFound
		}
		return nil
	})
	if err != nil {
		return nil, duplicateSlug(err)
	}
	s.CatalogCache.Invalidate(ctx)
	log.L.Info("tag updated", zap.Uint64("id", tag.ID), zap.String("slug", tag.Slug))
	return tag, nil
}

// Delete 先解除与商品的关联再删除标签，商品本身不受影响
func (s *TagService) Delete(ctx context.Context, id uint64) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ProductTagDAO.Tx(tx).DetachTag(ctx, id); err != nil {
			return err
		}
		rows, err := s.TagDAO.Tx(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrTagNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.CatalogCache.Invalidate(ctx)
	log.L.Info("tag deleted", zap.Uint64("id", id))
	return nil
}

func (s *TagService) Get(ctx context.Context, id uint64) (*types.TagDetail, error) {
	tag, err := s.TagDAO.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrTagNotFound
	}
	products, err := s.ProductDAO.ByTag(ctx, id)
	if err != nil {
		return nil, err
	}
	tag.ProductsCount = int64(len(products))
	return &types.TagDetail{Tag: tag, Products: products}, nil
}

// AdminList 按名称排序分页，附带 products_count
func (s *TagService) AdminList(ctx context.Context, page int, path string) (*paginate.Page[*models.Tag], error) {
	page = paginate.Normalize(page)
	tags, total, err := s.TagDAO.Page(ctx, AdminTagsPerPage, paginate.Offset(page, AdminTagsPerPage))
	if err != nil {
		return nil, err
	}
	if err := s.fillCounts(ctx, tags); err != nil {
		return nil, err
	}
	return paginate.New(tags, total, page, AdminTagsPerPage, path), nil
}

// All 不分页，附带 products_count
func (s *TagService) All(ctx context.Context) ([]*models.Tag, error) {
	tags, err := s.TagDAO.All(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.fillCounts(ctx, tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *TagService) fillCounts(ctx context.Context, tags []*models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	counts, err := s.ProductTagDAO.CountByTags(ctx, ids)
	if err != nil {
		return err
	}
	for _, t := range tags {
		t.ProductsCount = counts[t.ID]
	}
	return nil
}

// applyTag 校验请求并写入 tag，slug 为空时由名称派生
func applyTag(ctx context.Context, tags *dao.TagDAO, tag *models.Tag, req *types.TagRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.TrimSpace(req.Slug)
	req.Color = strings.TrimSpace(req.Color)

	ve := validateStruct("tag.", req)

	tag.Name = req.Name
	tag.Slug = req.Slug
	tag.Color = req.Color
	tag.Derive()

	if !ve.Has("slug") {
		if tag.Slug == "" {
			if !ve.Has("name") {
				ve.Add("slug", msgSlugUnderived)
			}
		} else {
			taken, err := tags.SlugExists(ctx, tag.Slug, tag.ID)
			if err != nil {
				return err
			}
			if taken {
				ve.Add("slug", msgSlugTaken)
			}
		}
	}
	return ve.OrNil()
}

// IsNotFound 商品或标签不存在
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrTagNotFound)
}
