package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/adiwijaya/ac-maintenance-service/config"
	"github.com/adiwijaya/ac-maintenance-service/internal/controller"
	messagequeue "github.com/adiwijaya/ac-maintenance-service/internal/infrastructure/message-queue/kafka"
	"github.com/adiwijaya/ac-maintenance-service/internal/infrastructure/tracing"
	custommiddleware "github.com/adiwijaya/ac-maintenance-service/internal/middleware"
	"github.com/adiwijaya/ac-maintenance-service/internal/repository"
	"github.com/adiwijaya/ac-maintenance-service/internal/service"
	"github.com/adiwijaya/ac-maintenance-service/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB            *mongo.Database
	Config        *config.Config
	KafkaProducer messagequeue.Producer
	Server        *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	app.Server = e

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		// the service still serves without tracing
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	} else {
		defer func() {
			if err := traceProvider.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown tracing")
			}
		}()

		tracer := traceProvider.Tracer("ac-maintenance-service")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// Empty prefix so metrics aggregate across services without renaming.
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")
	g.Use(custommiddleware.Logger)

	isLoggedIn := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(app.Config.JWTSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			errorResponse := map[string]interface{}{
				"status":  "error",
				"message": "Invalid or expired JWT",
				"errors":  nil,
			}
			return c.JSON(http.StatusUnauthorized, errorResponse)
		},
	})

	userRepo := repository.CreateNewUserRepository(app.DB)
	acRepo := repository.CreateNewACRepository(app.DB)
	maintenanceRepo := repository.CreateNewMaintenanceRepository(app.DB)

	userSvc := service.CreateNewUserService(userRepo, *app.Config)
	acSvc := service.CreateNewACService(acRepo, maintenanceRepo)
	maintenanceSvc := service.CreateNewMaintenanceService(maintenanceRepo, acRepo, userRepo, *app.Config, app.KafkaProducer)

	controller.CreateUserController(g, userSvc, isLoggedIn)
	controller.CreateACController(g, acSvc)
	controller.CreateMaintenanceController(g, maintenanceSvc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
