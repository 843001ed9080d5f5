// Package router wires the HTTP routes.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "item_backend/internal/feature/auth/transport/handler"
	itemhandler "item_backend/internal/feature/items/transport/handler"
	userhandler "item_backend/internal/feature/users/transport/handler"
	"item_backend/internal/platform/config"
	platformhandler "item_backend/internal/platform/http/handler"
	platformmw "item_backend/internal/platform/http/middleware"
)

// NewRouter builds the gin engine with all routes registered. guard is the
// authorization middleware applied to every route under /api/v1 except the
// auth endpoints themselves.
func NewRouter(cfg *config.Config, auth *authhandler.AuthHandler, items *itemhandler.ItemHandler,
	users *userhandler.UserHandler, guard gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	r.Use(platformmw.RequestID())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORS.Origins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Liveness probe, unauthenticated
	r.GET("/healthz", platformhandler.Health)

	v1 := r.Group("/api/v1")

	// Registration and login issue the credentials the guard checks,
	// so they stay outside of it.
	v1.POST("/auth/register", auth.Register)
	v1.POST("/auth/login", auth.Login)

	protected := v1.Group("")
	protected.Use(guard)
	{
		protected.GET("/items", items.List)
		protected.POST("/items", items.Create)
		protected.GET("/items/:id", items.Get)
		protected.PUT("/items/:id", items.Update)
		protected.DELETE("/items/:id", items.Delete)

		protected.GET("/users/me", users.Me)
		protected.PUT("/users/me", users.UpdateMe)
		protected.GET("/users", users.List)
		protected.GET("/users/:id", users.GetByID)
	}

	return r
}
