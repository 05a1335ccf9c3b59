package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"dashboard/internal/cache"
	intconfig "dashboard/internal/config"
	h "dashboard/internal/http/handlers"
	"dashboard/internal/http/middleware"
	"dashboard/internal/repositories"
	"dashboard/internal/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	secret := []byte(env.JWTSecret)
	r.Use(middleware.AuthGate(secret))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	routeCache := cache.NewRouteCache()
	invoices := h.InvoiceHandler{
		Repo:         repositories.InvoiceRepository{},
		Cache:        routeCache,
		CreateSchema: validation.NewCreateInvoiceSchema(),
		UpdateSchema: validation.NewUpdateInvoiceSchema(),
	}
	auth := h.AuthHandler{
		Users:  repositories.UserRepository{},
		Secret: secret,
	}

	r.POST("/login", auth.Login)

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("", invoices.Overview)
		dashboard.GET("/search", h.SearchInvoices)
		dashboard.POST("/logout", auth.Logout)

		inv := dashboard.Group("/invoices")
		inv.GET("", invoices.List)
		inv.POST("", invoices.Create)
		inv.PUT("/:id", invoices.Update)
		inv.DELETE("/:id", invoices.Delete)
		inv.GET("/:id/pdf", invoices.PDF)
	}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
	}

	return r
}
