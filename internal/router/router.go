package router

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/builder_site/internal/handler"
	"github.com/mishasvintus/builder_site/internal/logger"
	"github.com/mishasvintus/builder_site/internal/metrics"
	"github.com/mishasvintus/builder_site/internal/middleware"
	"github.com/mishasvintus/builder_site/internal/session"
)

// Deps groups everything the routes need.
type Deps struct {
	Log       logger.Logger
	Metrics   *metrics.Metrics
	Sessions  *session.Manager
	Templates *template.Template

	TeamHandler *handler.TeamHandler
	PageHandler *handler.PageHandler
}

// SetupRoutes configures all routes.
func SetupRoutes(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(d.Log), d.Metrics.Middleware())
	r.SetHTMLTemplate(d.Templates)

	r.GET("/healthz", handler.Health)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	// Team endpoints
	api := r.Group("/api", d.Sessions.Middleware(d.Log))
	api.GET("/team", d.TeamHandler.GetTeam)

	// Every other path is a CMS page
	r.NoRoute(d.PageHandler.Page)

	return r
}
