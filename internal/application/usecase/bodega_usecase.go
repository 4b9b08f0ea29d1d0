package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

// BodegaUseCase casos de uso CRUD para bodegas.
type BodegaUseCase struct {
	repo      repository.BodegaRepository
	stockRepo repository.StockRepository
}

// NewBodegaUseCase construye el caso de uso.
func NewBodegaUseCase(repo repository.BodegaRepository, stockRepo repository.StockRepository) *BodegaUseCase {
	return &BodegaUseCase{repo: repo, stockRepo: stockRepo}
}

// Create crea una bodega nueva.
func (uc *BodegaUseCase) Create(in dto.CreateBodegaRequest) (*dto.BodegaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	b := &entity.Bodega{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Direccion:   in.Direccion,
		Responsable: in.Responsable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(b); err != nil {
		return nil, err
	}
	return toBodegaResponse(b), nil
}

// GetByID obtiene una bodega por ID.
func (uc *BodegaUseCase) GetByID(id string) (*dto.BodegaResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	return toBodegaResponse(b), nil
}

// Update actualiza una bodega.
func (uc *BodegaUseCase) Update(id string, in dto.UpdateBodegaRequest) (*dto.BodegaResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		b.Nombre = *in.Nombre
	}
	if in.Direccion != nil {
		b.Direccion = *in.Direccion
	}
	if in.Responsable != nil {
		b.Responsable = *in.Responsable
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	return toBodegaResponse(b), nil
}

// List lista bodegas con paginación.
func (uc *BodegaUseCase) List(limit, offset int) (*dto.BodegaListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BodegaResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBodegaResponse(b))
	}
	return &dto.BodegaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Stock devuelve el stock materializado de todos los productos en la bodega.
func (uc *BodegaUseCase) Stock(bodegaID string) ([]dto.StockBodegaDTO, error) {
	b, err := uc.repo.GetByID(bodegaID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	filas, err := uc.stockRepo.ListByBodega(bodegaID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockBodegaDTO, 0, len(filas))
	for _, s := range filas {
		items = append(items, dto.StockBodegaDTO{
			ProductoID: s.ProductoID,
			BodegaID:   s.BodegaID,
			Cantidad:   s.Cantidad,
		})
	}
	return items, nil
}

// Delete elimina una bodega por ID.
func (uc *BodegaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toBodegaResponse(b *entity.Bodega) *dto.BodegaResponse {
	if b == nil {
		return nil
	}
	return &dto.BodegaResponse{
		ID:          b.ID,
		Nombre:      b.Nombre,
		Direccion:   b.Direccion,
		Responsable: b.Responsable,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
