package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/flotagest/internal/application/almacen"
	appanalytics "github.com/tu-usuario/flotagest/internal/application/analytics"
	"github.com/tu-usuario/flotagest/internal/application/auth"
	"github.com/tu-usuario/flotagest/internal/application/combustible"
	"github.com/tu-usuario/flotagest/internal/application/reportes"
	"github.com/tu-usuario/flotagest/internal/application/usecase"
	infraexcel "github.com/tu-usuario/flotagest/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/flotagest/internal/infrastructure/pdf"
	"github.com/tu-usuario/flotagest/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/flotagest/internal/interfaces/http"
	"github.com/tu-usuario/flotagest/pkg/config"
	"github.com/tu-usuario/flotagest/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	vehiculoRepo := postgres.NewVehiculoRepository(pool)
	tanqueRepo := postgres.NewTanqueRepository(pool)
	consumoRepo := postgres.NewConsumoRepository(pool)
	bodegaRepo := postgres.NewBodegaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	mantenimientoRepo := postgres.NewMantenimientoRepository(pool)
	personalRepo := postgres.NewPersonalRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	vehiculoUC := usecase.NewVehiculoUseCase(vehiculoRepo)
	tanqueUC := usecase.NewTanqueUseCase(tanqueRepo)
	bodegaUC := usecase.NewBodegaUseCase(bodegaRepo, stockRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	personalUC := usecase.NewPersonalUseCase(personalRepo)
	mantenimientoUC := usecase.NewMantenimientoUseCase(mantenimientoRepo, vehiculoRepo)
	auditoriaUC := usecase.NewAuditoriaUseCase(auditoriaRepo)

	registrarConsumoUC := combustible.NewRegistrarConsumoUseCase(txRunner, vehiculoRepo, tanqueRepo)
	consultarConsumosUC := combustible.NewConsultarConsumosUseCase(consumoRepo, vehiculoRepo)
	recargarTanqueUC := combustible.NewRecargarTanqueUseCase(txRunner, tanqueRepo)

	registrarMovUC := almacen.NewRegistrarMovimientoUseCase(txRunner, productoRepo, bodegaRepo)
	asignacionesUC := almacen.NewAsignacionesUseCase(movimientoRepo, productoRepo, registrarMovUC)

	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, tanqueRepo, mantenimientoRepo, asignacionesUC)

	pdfGenerator := infrapdf.NewMarotoReporteGenerator()
	excelExporter := infraexcel.NewExcelizeExporter()
	reportesUC := reportes.NewReportesUseCase(
		consumoRepo, vehiculoRepo, tanqueRepo,
		movimientoRepo, productoRepo, bodegaRepo,
		pdfGenerator, excelExporter,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FlotaGest API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		VehiculoUC:        vehiculoUC,
		TanqueUC:          tanqueUC,
		BodegaUC:          bodegaUC,
		ProductoUC:        productoUC,
		PersonalUC:        personalUC,
		MantenimientoUC:   mantenimientoUC,
		AuditoriaUC:       auditoriaUC,
		RegistrarConsumo:  registrarConsumoUC,
		ConsultarConsumos: consultarConsumosUC,
		RecargarTanque:    recargarTanqueUC,
		RegistrarMov:      registrarMovUC,
		Asignaciones:      asignacionesUC,
		DashboardUC:       dashboardUC,
		ReportesUC:        reportesUC,
		JWTSecret:         cfg.JWT.Secret,
	})

	httpLog := log.Componente("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
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
