package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del día y del mes en curso, más alertas operativas.
type DashboardSummaryDTO struct {
	// Consumo de combustible de hoy (00:00 – 23:59)
	LitrosHoy decimal.Decimal `json:"litros_hoy"`
	CargasHoy int             `json:"cargas_hoy"`

	// Consumo del mes en curso (día 1 – hoy)
	LitrosMes decimal.Decimal `json:"litros_mes"`
	CargasMes int             `json:"cargas_mes"`

	// Top 5 vehículos por consumo del mes (de mayor a menor)
	TopVehiculos []TopVehiculoDTO `json:"top_vehiculos"`

	// Alertas operativas
	TanquesCriticos      int `json:"tanques_criticos"`      // tanques en o bajo umbral
	AsignacionesVencidas int `json:"asignaciones_vencidas"` // custodias con vencimiento cumplido
	VehiculosEnTaller    int `json:"vehiculos_en_taller"`

	// Metadatos del período
	DateLabel string `json:"date_label"` // ej: "Junio 2024"
}

// TopVehiculoDTO resumen de un vehículo para el widget del dashboard.
type TopVehiculoDTO struct {
	VehiculoID string          `json:"vehiculo_id"`
	Placa      string          `json:"placa"`
	Litros     decimal.Decimal `json:"litros"`
	Cargas     int             `json:"cargas"`
}
