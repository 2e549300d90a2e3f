package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/BarApp-api/docs"
	appanalytics "github.com/jhoicas/BarApp-api/internal/application/analytics"
	"github.com/jhoicas/BarApp-api/internal/application/usecase"
	"github.com/jhoicas/BarApp-api/internal/domain/access"
	"github.com/jhoicas/BarApp-api/internal/infrastructure/authz"
	infrapdf "github.com/jhoicas/BarApp-api/internal/infrastructure/pdf"
	"github.com/jhoicas/BarApp-api/internal/infrastructure/rabbitmq"
	"github.com/jhoicas/BarApp-api/internal/infrastructure/storage"
	amqphandler "github.com/jhoicas/BarApp-api/internal/interfaces/amqp"
	httpRouter "github.com/jhoicas/BarApp-api/internal/interfaces/http"
	"github.com/jhoicas/BarApp-api/pkg/config"
	"github.com/jhoicas/BarApp-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title           BarApp API
// @version         1.0
// @description     Registros de negocio y reportes de ventas del POS.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer st.Close()

	policy, err := authz.NewCasbinPolicy()
	if err != nil {
		log.Fatal().Err(err).Msg("política de acceso")
	}
	guard := access.NewGuard(policy)

	businessUC := usecase.NewBusinessUseCase(st.Store, guard)
	queryUC := usecase.NewBusinessQueryUseCase(st.Store, guard, time.Local)
	reportUC := appanalytics.NewReportUseCase(st.Store, guard, time.Local)
	dailyReportUC := appanalytics.NewDailyReportUseCase(reportUC, infrapdf.NewMarotoPDFGenerator())

	// Consumidor de pedidos finalizados (opcional)
	consumerDone := make(chan struct{})
	if cfg.AMQP.Enabled() {
		conn, err := rabbitmq.Connect(cfg.AMQP.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer conn.Close()

		amqpLog := log.Named("amqp")
		consumer := rabbitmq.NewConsumer(conn, rabbitmq.Topology{
			Exchange:   cfg.AMQP.Exchange,
			Queue:      cfg.AMQP.Queue,
			RoutingKey: cfg.AMQP.RoutingKey,
		}, cfg.AMQP.Prefetch, amqpLog.Zerolog())
		handler := amqphandler.NewOrderFinalizedHandler(businessUC, amqpLog)

		go func() {
			defer close(consumerDone)
			if err := consumer.Run(ctx, handler.Handle); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("consumidor AMQP finalizado")
			}
		}()
		log.Info().Str("queue", cfg.AMQP.Queue).Msg("consumidor AMQP iniciado")
	} else {
		close(consumerDone)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Documento OpenAPI registrado por el paquete docs
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})
	// Swagger UI en local: http://localhost:<port>/docs (requiere swag init)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "BarApp API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		hctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := st.Health(hctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded", "service": cfg.App.Name, "storage": cfg.Storage.Driver,
			})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BusinessUC:  businessUC,
		QueryUC:     queryUC,
		ReportUC:    reportUC,
		DailyReport: dailyReportUC,
		Guard:       guard,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	select {
	case <-consumerDone:
	case <-shutdownCtx.Done():
		log.Warn().Msg("el consumidor AMQP no terminó a tiempo")
	}

	log.Info().Msg("aplicación detenida")
}
