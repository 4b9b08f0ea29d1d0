package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para los KPIs de consumo de la flota.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetConsumoMetrics devuelve litros totales y número de cargas en el rango dado.
func (r *AnalyticsRepo) GetConsumoMetrics(
	ctx context.Context,
	startDate, endDate time.Time,
) (decimal.Decimal, int, error) {
	const query = `
	SELECT
	    COALESCE(SUM(litros), 0) AS litros,
	    COUNT(*)                 AS cargas
	FROM consumos_combustible
	WHERE fecha BETWEEN $1 AND $2`

	var litros decimal.Decimal
	var cargas int
	err := r.pool.QueryRow(ctx, query, startDate, endDate).Scan(&litros, &cargas)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("analytics.GetConsumoMetrics: %w", err)
	}
	return litros, cargas, nil
}

// GetTopVehiculos devuelve los `limit` vehículos con mayor consumo en el
// período, ordenados de mayor a menor.
func (r *AnalyticsRepo) GetTopVehiculos(
	ctx context.Context,
	startDate, endDate time.Time,
	limit int,
) ([]repository.ConsumoVehiculoResult, error) {
	const query = `
	SELECT
	    v.id          AS vehiculo_id,
	    v.placa       AS placa,
	    SUM(c.litros) AS litros,
	    COUNT(c.id)   AS cargas
	FROM consumos_combustible c
	JOIN vehiculos v ON v.id = c.vehiculo_id
	WHERE c.fecha BETWEEN $1 AND $2
	GROUP BY v.id, v.placa
	ORDER BY litros DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopVehiculos: %w", err)
	}
	defer rows.Close()

	var results []repository.ConsumoVehiculoResult
	for rows.Next() {
		var row repository.ConsumoVehiculoResult
		if err := rows.Scan(&row.VehiculoID, &row.Placa, &row.Litros, &row.Cargas); err != nil {
			return nil, fmt.Errorf("analytics.GetTopVehiculos scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
