package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/BarApp-api/internal/application/dto"
	"github.com/jhoicas/BarApp-api/internal/domain"
	"github.com/jhoicas/BarApp-api/internal/domain/access"
	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/internal/domain/repository"
)

// BusinessQueryUseCase consulta genérica por campo sobre el catálogo business.QueryFields.
type BusinessQueryUseCase struct {
	repo  repository.BusinessRepository
	guard *access.Guard
	loc   *time.Location
}

// NewBusinessQueryUseCase construye el caso de uso. loc define el día calendario de las fechas YYYY-MM-DD.
func NewBusinessQueryUseCase(repo repository.BusinessRepository, guard *access.Guard, loc *time.Location) *BusinessQueryUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &BusinessQueryUseCase{repo: repo, guard: guard, loc: loc}
}

// Find ejecuta la consulta del campo asociado a route con los valores crudos lower/upper.
func (uc *BusinessQueryUseCase) Find(ctx context.Context, p access.Principal, route, lower, upper string) ([]dto.BusinessResponse, error) {
	field, ok := business.FieldByRoute(route)
	if !ok {
		return nil, domain.NewError(domain.ErrNotFound, "Unknown business query %q.", route)
	}
	return uc.Query(ctx, p, field, lower, upper)
}

// Query ejecuta la consulta sobre un campo del catálogo.
func (uc *BusinessQueryUseCase) Query(ctx context.Context, p access.Principal, field business.QueryField, lower, upper string) ([]dto.BusinessResponse, error) {
	if err := uc.guard.Authorize(p, access.ActionReport); err != nil {
		return nil, err
	}
	filter, err := business.NewFilter(field, lower, upper, uc.loc)
	if err != nil {
		return nil, err
	}
	records, err := uc.repo.FindByFilter(ctx, p.RestaurantID, filter)
	if err != nil {
		return nil, fmt.Errorf("business: consultar %s: %w", field.Key, err)
	}
	return dto.ToBusinessResponses(records), nil
}
