package service

import (
	"Shelf/config"
	"Shelf/pkg/log"
	"Shelf/pkg/utils"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(TagService), "*"),
	wire.Bind(new(ITagService), new(*TagService)),

	wire.Struct(new(SettingService), "*"),
	wire.Bind(new(ISettingService), new(*SettingService)),

	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	wire.Struct(new(DashboardService), "*"),
	wire.Bind(new(IDashboardService), new(*DashboardService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(Seeder), "*"),

	NewHashID,
)

func NewHashID(conf *config.Config) *utils.HashID {
	h, err := utils.NewHashID(conf.Hashids.Salt, conf.Hashids.MinLength)
	if err != nil {
		log.L.Fatal("init hashids", zap.Error(err))
	}
	return h
}
