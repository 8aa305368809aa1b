package service

import (
	"context"

	"Shelf/dao"
	"Shelf/models"
	"Shelf/types"

	"github.com/sourcegraph/conc/pool"
)

const recentProductsLimit = 5

type DashboardService struct {
	ProductDAO *dao.ProductDAO
	TagDAO     *dao.TagDAO
}

var _ IDashboardService = (*DashboardService)(nil)

type IDashboardService interface {
	Stats(ctx context.Context) (*types.DashboardStats, error)
}

// Stats 并发统计各项数量，并附带最近创建的商品
func (s *DashboardService) Stats(ctx context.Context) (*types.DashboardStats, error) {
	stats := &types.DashboardStats{}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		stats.TotalProducts, err = s.ProductDAO.Count(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		stats.PublishedProducts, err = s.ProductDAO.CountByStatus(ctx, models.ProductStatusPublished)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		stats.DraftProducts, err = s.ProductDAO.CountByStatus(ctx, models.ProductStatusDraft)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		stats.TotalTags, err = s.TagDAO.Count(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		stats.RecentProducts, err = s.ProductDAO.Recent(ctx, recentProductsLimit)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
