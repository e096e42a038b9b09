// Package server assembles the gin engine: middleware, sessions, templates
// and the role-gated route groups.
package server

import (
	"fmt"
	"net/http"
	"time"

	"store-app/config"
	"store-app/internal/auth"
	"store-app/internal/handler"
	"store-app/internal/middleware"
	"store-app/internal/service"
	"store-app/internal/views"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// New builds the HTTP handler. svc is the only path to storage.
func New(cfg *config.Config, svc *service.Service, log *zap.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))

	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Server.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(cfg.Session.Name, store))

	tmpl, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	base := handler.Base{Site: cfg.Site, Logger: log}
	publicHandler := &handler.PublicHandler{}
	authHandler := handler.NewAuthHandler(base)
	managerHandler := handler.NewManagerHandler(base, svc)
	inventoryHandler := handler.NewInventoryHandler(base, svc)
	cashierHandler := handler.NewCashierHandler(base, svc)

	r.GET("/", publicHandler.Index)
	r.GET("/ping", publicHandler.Ping)
	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	managerRoutes := r.Group("/manager")
	managerRoutes.Use(middleware.RequireRole(auth.RoleManager))
	{
		managerRoutes.GET("", managerHandler.Dashboard)
		managerRoutes.POST("/add_item", inventoryHandler.AddItem)
		managerRoutes.GET("/delete_item/:id", inventoryHandler.DeleteItem)
	}

	cashierRoutes := r.Group("/cashier")
	cashierRoutes.Use(middleware.RequireRole(auth.RoleCashier))
	{
		cashierRoutes.GET("", cashierHandler.Panel)
		cashierRoutes.POST("/sell", cashierHandler.Sell)
	}

	return r, nil
}
