package repository

import (
	"context"
	"time"

	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

// BusinessRepository puerto de persistencia de registros de negocio.
// Todas las operaciones están acotadas al restaurante indicado.
//
// GetByID y GetByOrderID devuelven (nil, nil) si no existe.
// Create devuelve domain.ErrDuplicate si ya hay un registro para el mismo pedido.
type BusinessRepository interface {
	Create(ctx context.Context, r *entity.BusinessRecord) error
	GetByID(ctx context.Context, restaurantID, id string) (*entity.BusinessRecord, error)
	GetByOrderID(ctx context.Context, restaurantID, orderID string) (*entity.BusinessRecord, error)
	FindByFilter(ctx context.Context, restaurantID string, f business.Filter) ([]*entity.BusinessRecord, error)
}

// BusinessReportRepository consultas agregadas de solo lectura.
type BusinessReportRepository interface {
	// GetTotals suma los registros con fecha en [start, end]; cero si no hay filas.
	GetTotals(ctx context.Context, restaurantID string, start, end time.Time) (entity.DailyTotals, error)
	GetSalesByWaiter(ctx context.Context, restaurantID string) ([]entity.SalesGroup, error)
	// GetSalesByOrigin y GetTopItems no acotan por fecha si start/end son cero.
	GetSalesByOrigin(ctx context.Context, restaurantID string, start, end time.Time) ([]entity.SalesGroup, error)
	GetTopItems(ctx context.Context, restaurantID string, start, end time.Time, limit int) ([]entity.ItemSales, error)
}

// BusinessStore agrupa ambos puertos; cada backend implementa los dos.
type BusinessStore interface {
	BusinessRepository
	BusinessReportRepository
}
