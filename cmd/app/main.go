package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"travigo/cmd/fx/account_fx"
	"travigo/cmd/fx/config_fx"
	"travigo/cmd/fx/controllers_fx"
	"travigo/cmd/fx/db_fx"
	"travigo/cmd/fx/itinerary_fx"
	"travigo/cmd/fx/memcache_fx"
	"travigo/internal/api/controllers"
	"travigo/internal/config"
	"travigo/pkg/middleware"
	mem "travigo/pkg/memcache"
	"travigo/pkg/observability"
	"travigo/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, logger zerolog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("starting HTTP server")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("HTTP server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	logger zerolog.Logger,
	reg *prometheus.Registry,
	jwtManager *utils.JWTManager,
	revoked mem.RevokedTokenStore,
	generateLimiter *middleware.UserRateLimiter,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	if cfg.AppEnv != "dev" && cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.BodyLimit(cfg.BodyLimitBytes))

	r.GET("/metrics", gin.WrapH(observability.MetricsHandler(reg)))

	RegisterRoutes(r, middleware.JWTAuthMiddleware(jwtManager, revoked), generateLimiter, accountController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	auth gin.HandlerFunc,
	generateLimiter *middleware.UserRateLimiter,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController) {

	v1 := r.Group("/api/v1")
	v1.GET("/auth/healthchecker", controllers.HealthCheck)

	users := v1.Group("/users")
	users.POST("/register", accountController.Register)
	users.POST("/login", accountController.Login)
	users.POST("/logout", auth, accountController.Logout)
	users.GET("/preferences", auth, accountController.GetPreferences)
	users.PATCH("/preferences", auth, accountController.UpdatePreferences)

	itineraries := v1.Group("/itineraries", auth)
	itineraries.POST("/generate", generateLimiter.Limit(), itineraryController.GenerateItinerary)
	itineraries.GET("", itineraryController.ListItineraries)
	itineraries.GET("/:id", itineraryController.GetItinerary)
}
