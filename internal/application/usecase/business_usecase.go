package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/BarApp-api/internal/application/dto"
	"github.com/jhoicas/BarApp-api/internal/domain"
	"github.com/jhoicas/BarApp-api/internal/domain/access"
	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/internal/domain/repository"
)

// BusinessUseCase alta y lectura puntual de registros de negocio.
type BusinessUseCase struct {
	repo  repository.BusinessRepository
	guard *access.Guard
	now   func() time.Time
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(repo repository.BusinessRepository, guard *access.Guard) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, guard: guard, now: time.Now}
}

// Create valida el registro candidato y lo persiste una sola vez por pedido.
func (uc *BusinessUseCase) Create(ctx context.Context, p access.Principal, req dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	if err := uc.guard.Authorize(p, access.ActionCreate); err != nil {
		return nil, err
	}
	record, err := business.Validate(req)
	if err != nil {
		return nil, err
	}
	record.ID = uuid.New().String()
	record.RestaurantID = p.RestaurantID
	record.CreatedAt = uc.now().UTC()

	if err := uc.repo.Create(ctx, record); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewError(domain.ErrDuplicate,
				"Relatory for order with id %s already exists.", record.OriginalOrderID)
		}
		return nil, fmt.Errorf("business: crear registro: %w", err)
	}
	out := dto.ToBusinessResponse(record)
	return &out, nil
}

// GetByID obtiene un registro del restaurante del llamador.
func (uc *BusinessUseCase) GetByID(ctx context.Context, p access.Principal, id string) (*dto.BusinessResponse, error) {
	if err := uc.guard.Authenticate(p); err != nil {
		return nil, err
	}
	record, err := uc.repo.GetByID(ctx, p.RestaurantID, id)
	if err != nil {
		return nil, fmt.Errorf("business: obtener por id: %w", err)
	}
	if record == nil {
		return nil, domain.NewError(domain.ErrNotFound, "Relatory with id %s not found.", id)
	}
	out := dto.ToBusinessResponse(record)
	return &out, nil
}

// GetByOrderID obtiene el registro generado a partir de un pedido.
func (uc *BusinessUseCase) GetByOrderID(ctx context.Context, p access.Principal, orderID string) (*dto.BusinessResponse, error) {
	if err := uc.guard.Authenticate(p); err != nil {
		return nil, err
	}
	record, err := uc.repo.GetByOrderID(ctx, p.RestaurantID, orderID)
	if err != nil {
		return nil, fmt.Errorf("business: obtener por pedido: %w", err)
	}
	if record == nil {
		return nil, domain.NewError(domain.ErrNotFound, "Relatory for order with id %s not found.", orderID)
	}
	out := dto.ToBusinessResponse(record)
	return &out, nil
}
