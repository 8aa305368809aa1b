package service

import (
	"context"
	"testing"
	"time"

	"Shelf/config"
	"Shelf/dao"
	"Shelf/dao/cache"
	"Shelf/internal/testutil"
	"Shelf/models"
	"Shelf/pkg/utils"
	"Shelf/types"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	conf      *config.Config
	products  *ProductService
	tags      *TagService
	settings  *SettingService
	catalog   *CatalogService
	dashboard *DashboardService
}

// newFixture 构建一组共享同一个内存库的 service，rds 为 nil 时不启用缓存
func newFixture(t *testing.T, rds *redis.Client) *fixture {
	t.Helper()

	conf, err := config.Parse([]byte("hashids:\n  salt: test-salt\n"))
	require.NoError(t, err)

	db := testutil.NewDB(t)
	productDAO := dao.NewProductDAO(db)
	tagDAO := dao.NewTagDAO(db)
	productTagDAO := dao.NewProductTagDAO(db)
	catalogCache := cache.NewCatalogStorage(rds, conf)

	hashID, err := utils.NewHashID(conf.Hashids.Salt, conf.Hashids.MinLength)
	require.NoError(t, err)

	f := &fixture{db: db, conf: conf}
	f.products = &ProductService{
		DB:            db,
		ProductDAO:    productDAO,
		TagDAO:        tagDAO,
		ProductTagDAO: productTagDAO,
		CatalogCache:  catalogCache,
	}
	f.tags = &TagService{
		DB:            db,
		TagDAO:        tagDAO,
		ProductDAO:    productDAO,
		ProductTagDAO: productTagDAO,
		CatalogCache:  catalogCache,
	}
	f.settings = &SettingService{
		DB:             db,
		SiteSettingDAO: dao.NewSiteSettingDAO(db),
		SettingCache:   cache.NewSettingStorage(rds, conf),
	}
	f.catalog = &CatalogService{
		ProductDAO:     productDAO,
		TagService:     f.tags,
		SettingService: f.settings,
		CatalogCache:   catalogCache,
		HashID:         hashID,
	}
	f.dashboard = &DashboardService{ProductDAO: productDAO, TagDAO: tagDAO}
	return f
}

func productRequest(name string) *types.ProductRequest {
	price := decimal.RequireFromString("19.99")
	return &types.ProductRequest{
		Name:          name,
		Price:         &price,
		AffiliateLink: "https://shopee.com/product/123",
		Description:   "# Overview\nA fine product.",
		Status:        models.ProductStatusPublished,
	}
}

func strPtr(s string) *string {
	return &s
}

func (f *fixture) createTag(t *testing.T, name string) *models.Tag {
	t.Helper()
	tag, err := f.tags.Create(context.Background(), &types.TagRequest{Name: name})
	require.NoError(t, err)
	return tag
}

func (f *fixture) createProduct(t *testing.T, req *types.ProductRequest) *models.Product {
	t.Helper()
	p, err := f.products.Create(context.Background(), req)
	require.NoError(t, err)
	return p
}

// insertProduct 绕过 service 直接写库，便于指定 created_at
func (f *fixture) insertProduct(t *testing.T, name, status string, sortOrder int, createdAt time.Time) *models.Product {
	t.Helper()
	p := &models.Product{
		Name:          name,
		Price:         decimal.NewFromInt(10),
		AffiliateLink: "https://example.com/" + name,
		Description:   "text",
		Status:        status,
		SortOrder:     sortOrder,
		CreatedAt:     createdAt,
		GalleryImages: []string{},
	}
	p.DeriveOnCreate()
	require.NoError(t, dao.NewProductDAO(f.db).Create(context.Background(), p))
	return p
}

func (f *fixture) countProducts(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.Product{}).Count(&n).Error)
	return n
}

// deleteBeforeUpdate 在下一次对 table 的 UPDATE 执行前删除该行，模拟并发删除
func (f *fixture) deleteBeforeUpdate(t *testing.T, table string, id uint64) *bool {
	t.Helper()
	fired := new(bool)
	name := "test:delete_before_update_" + table
	require.NoError(t, f.db.Callback().Update().Before("gorm:update").Register(name, func(db *gorm.DB) {
		if *fired || db.Statement.Table != table {
			return
		}
		*fired = true
		err := db.Session(&gorm.Session{NewDB: true}).Exec("DELETE FROM "+table+" WHERE id = ?", id).Error
		require.NoError(t, err)
	}))
	return fired
}
