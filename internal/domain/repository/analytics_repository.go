package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ConsumoVehiculoResult resultado crudo de la consulta de consumo por vehículo.
// Lo produce la DB; el use case lo convierte en DTO.
type ConsumoVehiculoResult struct {
	VehiculoID string
	Placa      string
	Litros     decimal.Decimal
	Cargas     int
}

// AnalyticsRepository define las consultas de lectura para los KPIs del
// dashboard. Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetConsumoMetrics devuelve litros totales y número de cargas en el rango
	// de fechas dado. Usa COALESCE para devolver cero si no hay consumos.
	GetConsumoMetrics(ctx context.Context, startDate, endDate time.Time) (litros decimal.Decimal, cargas int, err error)

	// GetTopVehiculos devuelve los `limit` vehículos con mayor consumo en el
	// período, ordenados de mayor a menor.
	GetTopVehiculos(ctx context.Context, startDate, endDate time.Time, limit int) ([]ConsumoVehiculoResult, error)
}
