package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/flotagest/internal/application/dto"
	"github.com/tu-usuario/flotagest/internal/domain/entity"
	"github.com/tu-usuario/flotagest/internal/domain/repository"
)

// AuditoriaUseCase registra y consulta la traza de auditoría.
type AuditoriaUseCase struct {
	repo repository.AuditoriaRepository
}

// NewAuditoriaUseCase construye el caso de uso.
func NewAuditoriaUseCase(repo repository.AuditoriaRepository) *AuditoriaUseCase {
	return &AuditoriaUseCase{repo: repo}
}

// RegistroOpts datos de un evento auditable. Antes y Despues se serializan
// a JSON; un valor nil se omite.
type RegistroOpts struct {
	UserID      string
	UserNombre  string
	Entidad     string
	EntidadID   string
	Accion      string
	Descripcion string
	Antes       any
	Despues     any
}

// Registrar persiste un evento de auditoría. Un fallo aquí no debe tumbar la
// operación que lo origina: se loguea y se devuelve el error para que el
// llamador decida.
func (uc *AuditoriaUseCase) Registrar(opts RegistroOpts) error {
	r := &entity.RegistroAuditoria{
		ID:          uuid.New().String(),
		UserID:      opts.UserID,
		UserNombre:  opts.UserNombre,
		Entidad:     opts.Entidad,
		EntidadID:   opts.EntidadID,
		Accion:      opts.Accion,
		Descripcion: opts.Descripcion,
		CreatedAt:   time.Now(),
	}
	if opts.Antes != nil {
		if b, err := json.Marshal(opts.Antes); err == nil {
			r.Antes = b
		}
	}
	if opts.Despues != nil {
		if b, err := json.Marshal(opts.Despues); err == nil {
			r.Despues = b
		}
	}
	if err := uc.repo.Create(r); err != nil {
		log.Error().Err(err).
			Str("entidad", opts.Entidad).
			Str("accion", opts.Accion).
			Msg("no se pudo registrar auditoría")
		return err
	}
	return nil
}

// List consulta la traza filtrando por entidad y rango de fechas.
func (uc *AuditoriaUseCase) List(entidad string, from, to *time.Time, limit, offset int) (*dto.AuditoriaListResponse, error) {
	list, err := uc.repo.List(entidad, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditoriaResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.AuditoriaResponse{
			ID:          r.ID,
			UserID:      r.UserID,
			UserNombre:  r.UserNombre,
			Entidad:     r.Entidad,
			EntidadID:   r.EntidadID,
			Accion:      r.Accion,
			Descripcion: r.Descripcion,
			Antes:       r.Antes,
			Despues:     r.Despues,
			CreatedAt:   r.CreatedAt,
		})
	}
	return &dto.AuditoriaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
