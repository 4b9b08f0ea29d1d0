package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, codigo, nombre, descripcion, unidad, retornable, stock_minimo, en_uso, created_at, updated_at`

// ProductoRepo implementación de ProductoRepository (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.Unidad, p.Retornable,
		p.StockMinimo, p.EnUso, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.getBy("id", id)
}

// GetByCodigo obtiene un producto por código.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	return r.getBy("codigo", codigo)
}

func (r *ProductoRepo) getBy(field, value string) (*entity.Producto, error) {
	query := fmt.Sprintf(`SELECT `+productoColumns+` FROM productos WHERE %s = $1`, field)
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Unidad, &p.Retornable,
		&p.StockMinimo, &p.EnUso, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista productos con paginación.
func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos ORDER BY codigo LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// ListRetornables lista los productos sujetos a custodia por responsable.
func (r *ProductoRepo) ListRetornables() ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE retornable ORDER BY codigo`
	return r.scanMany(query)
}

func (r *ProductoRepo) scanMany(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion, &p.Unidad, &p.Retornable,
			&p.StockMinimo, &p.EnUso, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente. No toca en_uso: ese contador se
// ajusta solo con UpdateEnUso dentro de la transacción del movimiento.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET codigo = $2, nombre = $3, descripcion = $4, unidad = $5,
		    retornable = $6, stock_minimo = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion, p.Unidad,
		p.Retornable, p.StockMinimo, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateEnUso ajusta el contador informativo de unidades entregadas.
func (r *ProductoRepo) UpdateEnUso(id string, delta decimal.Decimal) error {
	query := `UPDATE productos SET en_uso = en_uso + $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("update en_uso producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
