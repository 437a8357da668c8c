package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mergington/activities/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Root - redirect to the landing page
	s.echo.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
	})
	s.echo.StaticFS("/static", echo.MustSubFS(web.StaticFS, "static"))

	// Activity directory
	s.echo.GET("/activities", s.handleListActivities)
	s.echo.POST("/activities/:name/signup", s.handleSignup)
	s.echo.DELETE("/activities/:name/signup", s.handleUnregister)
}
