package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/moneyjournal/backend/api"
	"github.com/moneyjournal/backend/internal/config"
	"github.com/moneyjournal/backend/pkg/auth"
	"github.com/moneyjournal/backend/pkg/controllers"
	"github.com/moneyjournal/backend/pkg/controllers/healthz"
	"github.com/moneyjournal/backend/pkg/controllers/root"
	versionController "github.com/moneyjournal/backend/pkg/controllers/version"
	"github.com/moneyjournal/backend/pkg/httputil"
	"github.com/moneyjournal/backend/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

var errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")

// Config sets up the router with all middlewares. The returned function
// must be called when the router is not used anymore.
func Config(cfg *config.Config) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Client IPs are only used for rate limiting, forwarded
	// headers can be forged
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware())
	r.NoMethod(func(c *gin.Context) {
		httputil.NewError(c, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("allowOrigins", cfg.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOriginFunc:  allowOrigin(cfg.CORSAllowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}
	teardown := func() {
		unregisterPrometheusMetrics()
	}
	r.Use(MetricsMiddleware())

	r.Use(auth.Middleware(auth.NewStore(cfg.SessionSecret, cfg.SessionMaxAge, cfg.SessionSecure)))

	templates, err := web.Templates()
	if err != nil {
		teardown()
		return nil, func() {}, fmt.Errorf("parsing templates: %w", err)
	}
	r.SetHTMLTemplate(templates)
	r.StaticFS("/static", http.FS(web.Static()))

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy
	_ = r.SetTrustedProxies([]string{})

	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Title = "Money Journal"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Money Journal, a household expense tracker with monthly pocket budgets."

	return r, teardown, nil
}

// allowOrigin matches origins against the configured patterns.
// Patterns can contain * as wildcard, e.g. https://*.example.com.
func allowOrigin(patterns []string) func(string) bool {
	return func(origin string) bool {
		for _, pattern := range patterns {
			if glob.Glob(pattern, origin) {
				return true
			}
		}
		return false
	}
}

// AttachRoutes attaches all pages and API routes to the router group that is passed in.
func AttachRoutes(cfg *config.Config, co controllers.Controller, group *gin.RouterGroup) {
	healthz.RegisterRoutes(group.Group("/healthz"), co.DB)
	versionController.RegisterRoutes(group.Group("/version"), version)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Pages and authentication
	co.RegisterPublicPages(group)

	limiter := NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow)
	co.RegisterAuthRoutes(group.Group("/auth", limiter.Middleware()))

	co.RegisterPages(group.Group("", auth.RequireSession()))

	// JSON API
	root.RegisterRoutes(group.Group("/api"))

	api := group.Group("/api", auth.RequireSession())
	co.RegisterTransactionRoutes(api)
	co.RegisterBudgetRoutes(api.Group("/budget"))
	co.RegisterDashboardRoutes(api.Group("/dashboard"))
	co.RegisterRegistryRoutes(api.Group("/registry"))
}
