package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/shoutbase/shoutbase/internal/api/auth"
	"github.com/shoutbase/shoutbase/internal/branddata"
	"github.com/shoutbase/shoutbase/internal/config"
)

// Server represents the API server
type Server struct {
	echo *echo.Echo
	cfg  *config.Config
	db   *sql.DB

	tokenService *auth.TokenService
	authHandlers *auth.AuthHandlers
	brandVoice   *BrandVoiceHandlers
	widgets      *WidgetHandlers
	testimonials *TestimonialHandlers
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, db *sql.DB) *Server {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	tokenService := auth.NewTokenService(db, cfg.Auth.JWTSecret)
	if cfg.Auth.AccessTokenMins > 0 {
		tokenService.AccessTokenDuration = time.Duration(cfg.Auth.AccessTokenMins) * time.Minute
	}
	if cfg.Auth.RefreshTokenDays > 0 {
		tokenService.RefreshTokenDuration = time.Duration(cfg.Auth.RefreshTokenDays) * 24 * time.Hour
	}

	brandStore := branddata.NewStore(db)

	server := &Server{
		echo:         e,
		cfg:          cfg,
		db:           db,
		tokenService: tokenService,
		authHandlers: auth.NewAuthHandlers(tokenService, db),
		brandVoice:   NewBrandVoiceHandlers(brandStore, db, cfg.Brand.DefaultName),
		widgets:      NewWidgetHandlers(),
		testimonials: NewTestimonialHandlers(db),
	}

	server.setupRoutes()

	return server
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	v1 := s.echo.Group("/api/v1")

	// Auth endpoints (unauthenticated)
	loginLimiter := newIPRateLimiter(s.cfg.Auth.LoginRatePerMin)
	v1.POST("/auth/login", s.authHandlers.Login, loginLimiter.Middleware())
	v1.POST("/auth/signup", s.authHandlers.Signup)
	v1.POST("/auth/refresh", s.authHandlers.Refresh)
	v1.POST("/auth/logout", s.authHandlers.Logout)
	v1.POST("/auth/password-reset", s.authHandlers.RequestPasswordReset)
	v1.POST("/auth/password-reset/confirm", s.authHandlers.ResetPassword)

	// Everything below requires a session
	authed := v1.Group("", auth.Middleware(s.tokenService))

	// Brand voice
	authed.GET("/brand/voice", s.brandVoice.GetDocument)
	authed.GET("/brand/voice/templates/:channel/:type", s.brandVoice.GetTemplate)
	authed.PUT("/brand/voice/templates/:channel/:type", s.brandVoice.PutTemplate)
	authed.GET("/brand/voice/defaults/:channel/:type", s.brandVoice.GetDefault)
	authed.GET("/brand/voice/suggestions/:channel/:type", s.brandVoice.GetSuggestions)
	authed.POST("/brand/voice/preview", s.brandVoice.Preview)

	// Widgets
	authed.GET("/widgets/templates", s.widgets.ListTemplates)
	authed.POST("/widgets/embed", s.widgets.GenerateEmbed)
	authed.POST("/widgets/config", s.widgets.PatchConfig)

	// Testimonials
	authed.GET("/testimonials", s.testimonials.List)
	authed.POST("/testimonials", s.testimonials.Create)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo { return s.echo }

// Start begins the API server
func (s *Server) Start() error {
	go func() {
		if err := s.echo.Start(fmt.Sprintf(":%d", s.cfg.Server.Port)); err != nil && err != http.ErrServerClosed {
			s.echo.Logger.Fatal("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.echo.Shutdown(ctx)
}
