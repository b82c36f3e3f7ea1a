package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/carta/internal/auth"
	authdomain "github.com/smallbiznis/carta/internal/auth/domain"
	"github.com/smallbiznis/carta/internal/auth/session"
	"github.com/smallbiznis/carta/internal/catalog"
	catalogdomain "github.com/smallbiznis/carta/internal/catalog/domain"
	"github.com/smallbiznis/carta/internal/config"
	"github.com/smallbiznis/carta/internal/menu"
	menudomain "github.com/smallbiznis/carta/internal/menu/domain"
	obsmetrics "github.com/smallbiznis/carta/internal/observability/metrics"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	obsmetrics.Module,
	auth.Module,
	session.Module,
	catalog.Module,
	menu.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(RunHTTP),
)

func NewEngine(httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	db         *gorm.DB
	authsvc    authdomain.Service
	sessions   *session.Manager
	catalogSvc catalogdomain.Service
	menuSvc    menudomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	DB         *gorm.DB
	Authsvc    authdomain.Service
	Sessions   *session.Manager
	CatalogSvc catalogdomain.Service
	MenuSvc    menudomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		db:         p.DB,
		authsvc:    p.Authsvc,
		sessions:   p.Sessions,
		catalogSvc: p.CatalogSvc,
		menuSvc:    p.MenuSvc,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func RegisterRoutes(s *Server) {
	s.registerAuthRoutes()
	s.registerPublicRoutes()
	s.registerDashboardRoutes()
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.WebAuthRequired(), s.Me)
}

func (s *Server) registerPublicRoutes() {
	s.engine.GET("/api/menus/:slug", s.PublicMenu)
}

func (s *Server) registerDashboardRoutes() {
	api := s.engine.Group("/api", s.WebAuthRequired())

	api.GET("/dashboard/catalog", s.DashboardCatalog)
	api.POST("/products", s.CreateProduct)
	api.PATCH("/products/:id/price", s.UpdateProductPrice)
	api.PUT("/products/:id/availability", s.SetProductAvailability)
}

func RunHTTP(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
