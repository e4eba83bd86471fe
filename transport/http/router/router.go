package router

import (
	"net/http"

	"frontdesk/config"
	"frontdesk/internal/handlers/checkin"
	"frontdesk/internal/handlers/panel"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "frontdesk/docs"
)

type DomainHandlers struct {
	CheckIn checkin.Handler
	Panel   panel.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.Middleware.RequestID)
	router.Use(r.Middleware.Logger)
	router.Use(r.Middleware.Tracing)
	router.Use(r.Middleware.RateLimit)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusOK, "OK")
	})

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	r.DomainHandlers.Panel.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.CheckIn.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
		Config:         config,
	}
}
