//go:build wireinject
// +build wireinject

package main

import (
	"Shelf/config"
	"Shelf/dao"
	"Shelf/dao/cache"
	"Shelf/handler"
	"Shelf/pkg/client"
	"Shelf/pkg/database"
	"Shelf/pkg/server"
	"Shelf/service"

	"github.com/google/wire"
)

var infraSet = wire.NewSet(
	database.NewDB,
	client.NewRedisClient,
	cache.ProviderSet,
	dao.ProviderSet,
	service.ProviderSet,
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		infraSet,
		server.NewGinEngine,
		wire.Struct(new(handler.Health), "*"),
		wire.Struct(new(handler.Storefront), "*"),
		wire.Struct(new(handler.AdminAuth), "*"),
		wire.Struct(new(handler.Admin), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Tag), "*"),
		wire.Struct(new(handler.Setting), "*"),
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}

func InitSeeder(cfg *config.Config) *service.Seeder {
	wire.Build(infraSet)
	return nil
}
