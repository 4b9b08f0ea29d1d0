package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/flotagest/internal/application/almacen"
	"github.com/tu-usuario/flotagest/internal/application/analytics"
	"github.com/tu-usuario/flotagest/internal/application/auth"
	"github.com/tu-usuario/flotagest/internal/application/combustible"
	"github.com/tu-usuario/flotagest/internal/application/reportes"
	"github.com/tu-usuario/flotagest/internal/application/usecase"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	VehiculoUC        *usecase.VehiculoUseCase
	TanqueUC          *usecase.TanqueUseCase
	BodegaUC          *usecase.BodegaUseCase
	ProductoUC        *usecase.ProductoUseCase
	PersonalUC        *usecase.PersonalUseCase
	MantenimientoUC   *usecase.MantenimientoUseCase
	AuditoriaUC       *usecase.AuditoriaUseCase
	RegistrarConsumo  *combustible.RegistrarConsumoUseCase
	ConsultarConsumos *combustible.ConsultarConsumosUseCase
	RecargarTanque    *combustible.RecargarTanqueUseCase
	RegistrarMov      *almacen.RegistrarMovimientoUseCase
	Asignaciones      *almacen.AsignacionesUseCase
	DashboardUC       *analytics.DashboardUseCase
	ReportesUC        *reportes.ReportesUseCase
	JWTSecret         string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token). Toda mutación deja traza.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), AuditMiddleware(deps.AuditoriaUC))
	soloAdmin := RequireRole(entity.RolAdmin)
	escritura := RequireRole(entity.RolAdmin, entity.RolSupervisor, entity.RolBodeguero)

	// Vehículos (protegido)
	vehiculos := protected.Group("/vehiculos")
	vehiculoHandler := NewVehiculoHandler(deps.VehiculoUC)
	consumoHandler := NewConsumoHandler(deps.RegistrarConsumo, deps.ConsultarConsumos)
	vehiculos.Post("/", escritura, vehiculoHandler.Create)
	vehiculos.Get("/", vehiculoHandler.List)
	vehiculos.Get("/:id", vehiculoHandler.GetByID)
	vehiculos.Put("/:id", escritura, vehiculoHandler.Update)
	vehiculos.Delete("/:id", soloAdmin, vehiculoHandler.Delete)
	vehiculos.Get("/:id/consumos", consumoHandler.ListByVehiculo)

	// Tanques (protegido)
	tanques := protected.Group("/tanques")
	tanqueHandler := NewTanqueHandler(deps.TanqueUC, deps.RecargarTanque)
	tanques.Post("/", escritura, tanqueHandler.Create)
	tanques.Get("/", tanqueHandler.List)
	tanques.Get("/criticos", tanqueHandler.ListCriticos)
	tanques.Get("/:id", tanqueHandler.GetByID)
	tanques.Put("/:id", escritura, tanqueHandler.Update)
	tanques.Delete("/:id", soloAdmin, tanqueHandler.Delete)
	tanques.Post("/:id/recargas", escritura, tanqueHandler.Recargar)

	// Consumos de combustible (protegido)
	consumos := protected.Group("/consumos")
	consumos.Post("/", escritura, consumoHandler.Registrar)

	// Bodegas (protegido)
	bodegas := protected.Group("/bodegas")
	bodegaHandler := NewBodegaHandler(deps.BodegaUC)
	bodegas.Post("/", escritura, bodegaHandler.Create)
	bodegas.Get("/", bodegaHandler.List)
	bodegas.Get("/:id", bodegaHandler.GetByID)
	bodegas.Put("/:id", escritura, bodegaHandler.Update)
	bodegas.Delete("/:id", soloAdmin, bodegaHandler.Delete)
	bodegas.Get("/:id/stock", bodegaHandler.Stock)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", escritura, productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", escritura, productoHandler.Update)
	productos.Delete("/:id", soloAdmin, productoHandler.Delete)

	// Almacén: libro de movimientos, asignaciones y devoluciones (protegido)
	almacenGroup := protected.Group("/almacen")
	almacenHandler := NewAlmacenHandler(deps.RegistrarMov, deps.Asignaciones)
	almacenGroup.Post("/movimientos", escritura, almacenHandler.RegistrarMovimiento)
	almacenGroup.Get("/productos/:id/asignaciones", almacenHandler.Asignaciones)
	almacenGroup.Get("/productos/:id/movimientos", almacenHandler.Historial)
	almacenGroup.Post("/devoluciones", escritura, almacenHandler.RegistrarDevolucion)

	// Mantenimientos (protegido)
	mantenimientos := protected.Group("/mantenimientos")
	mantenimientoHandler := NewMantenimientoHandler(deps.MantenimientoUC)
	mantenimientos.Post("/", escritura, mantenimientoHandler.Create)
	mantenimientos.Get("/", mantenimientoHandler.List)
	mantenimientos.Get("/:id", mantenimientoHandler.GetByID)
	mantenimientos.Put("/:id", escritura, mantenimientoHandler.Update)

	// Personal (protegido)
	personal := protected.Group("/personal")
	personalHandler := NewPersonalHandler(deps.PersonalUC)
	personal.Post("/", escritura, personalHandler.Create)
	personal.Get("/", personalHandler.List)
	personal.Get("/:id", personalHandler.GetByID)
	personal.Put("/:id", escritura, personalHandler.Update)
	personal.Delete("/:id", soloAdmin, personalHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Reportes (protegido)
	reportesGroup := protected.Group("/reportes")
	reportesHandler := NewReportesHandler(deps.ReportesUC)
	reportesGroup.Get("/consumos.pdf", reportesHandler.ConsumosPDF)
	reportesGroup.Get("/movimientos.xlsx", reportesHandler.MovimientosExcel)

	// Auditoría (solo admin)
	auditoria := protected.Group("/auditoria", soloAdmin)
	auditoriaHandler := NewAuditoriaHandler(deps.AuditoriaUC)
	auditoria.Get("/", auditoriaHandler.List)
}
