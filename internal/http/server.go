package http

import (
	"context"
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"user-service/internal/authz"
	"user-service/internal/config"
	"user-service/internal/http/handler"
	"user-service/internal/http/middleware"
	"user-service/internal/identity"
)

const (
	jsonKeyStatus    = "status"
	statusOK         = "ok"
	requestBodyLimit = "1M"
)

type ServerDependencies struct {
	Config  *config.Config
	Gateway identity.Gateway
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID middleware (first, so all logs have request ID)
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware(handler.CORSMethodsDefault))

	strictRateLimiter := middleware.NewStrictRateLimiter()

	authHandler := handler.NewAuthHandler(deps.Gateway)
	userHandler := handler.NewUserHandler(deps.Gateway, deps.Config.App.ListUsersLimit)

	e.POST("/login", authHandler.Login, strictRateLimiter.Middleware(handler.CORSMethodsLogin))
	e.OPTIONS("/login", handler.Preflight(handler.CORSMethodsLogin))

	e.POST("/users", userHandler.CreateUser,
		handler.RequireRoles(handler.CORSMethodsUsers, authz.RoleAdmin, authz.RoleSuperAdmin))
	e.GET("/users", userHandler.ListUsers,
		handler.RequireRoles(handler.CORSMethodsUsers, authz.RoleSuperAdmin))
	e.OPTIONS("/users", handler.Preflight(handler.CORSMethodsUsers))

	e.GET("/me", userHandler.Me,
		handler.RequireRoles(handler.CORSMethodsMe, authz.RoleAdmin))
	e.OPTIONS("/me", handler.Preflight(handler.CORSMethodsMe))

	e.GET("/health", healthCheck)

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
