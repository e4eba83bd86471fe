//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/otel"
	checkinHandler "frontdesk/internal/handlers/checkin"
	panelHandler "frontdesk/internal/handlers/panel"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	intakeService "frontdesk/internal/domains/intake/service"
	occupancyService "frontdesk/internal/domains/occupancy/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	ProvideStore,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var domains = wire.NewSet(
	intakeService.New,
	occupancyService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	checkinHandler.New,
	panelHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
