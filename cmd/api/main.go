package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/caja-api/docs"
	"github.com/jhoicas/caja-api/internal/application/auth"
	"github.com/jhoicas/caja-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/caja-api/internal/infrastructure/pdf"
	"github.com/jhoicas/caja-api/internal/infrastructure/rtdb"
	httpRouter "github.com/jhoicas/caja-api/internal/interfaces/http"
	"github.com/jhoicas/caja-api/pkg/config"
	"github.com/jhoicas/caja-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("auth_driver", cfg.Auth.Driver).
		Str("store_driver", cfg.Store.Driver).
		Msg("iniciando aplicación")

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.App.Env,
		}); err != nil {
			log.Warn().Err(err).Msg("sentry deshabilitado")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx := context.Background()
	be, err := newBackends(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar backends")
	}
	defer be.Close()

	userRepo := rtdb.NewUserRepository(be.Store)
	saleRepo := rtdb.NewSaleRepository(be.Store)
	productRepo := rtdb.NewProductRepository(be.Store)

	authUC := auth.NewAuthUseCase(be.Identity, userRepo, log.Component("auth"))
	userUC := usecase.NewUserUseCase(be.Identity, userRepo, log.Component("usuarios"))
	saleUC := usecase.NewSaleUseCase(saleRepo, userRepo, infrapdf.NewReceiptGenerator(cfg.App.Name))
	productUC := usecase.NewProductUseCase(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})

	if cfg.Sentry.DSN != "" {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.App.Env == "development"}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: false,
	}))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Title = cfg.App.Name
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "Caja API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		SaleUC:         saleUC,
		ProductUC:      productUC,
		AdminOnlyUsers: cfg.Auth.AdminOnlyUsers,
		DevRoutes:      cfg.HTTP.DevRoutes,
	})
	if cfg.HTTP.DevRoutes {
		log.Warn().Msg("rutas /api/dev habilitadas: no usar en producción")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil && !strings.Contains(err.Error(), "closed") {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
