//go:build wireinject
// +build wireinject

package main

import (
	"Circle/config"
	"Circle/dao"
	"Circle/handler"
	"Circle/pkg/database"
	"Circle/pkg/server"
	"Circle/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		server.NewGinEngine,
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Follow), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
