// Package memory implementa el almacén de registros de negocio en memoria.
// Se usa con STORAGE_DRIVER=memory (desarrollo local) y en los tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/BarApp-api/internal/domain"
	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
	"github.com/jhoicas/BarApp-api/internal/domain/repository"
)

var _ repository.BusinessStore = (*BusinessStore)(nil)

// BusinessStore registros en orden de inserción, particionados por restaurante.
type BusinessStore struct {
	mu      sync.RWMutex
	records map[string][]*entity.BusinessRecord // restaurantID -> registros
}

// NewBusinessStore construye el almacén vacío.
func NewBusinessStore() *BusinessStore {
	return &BusinessStore{records: make(map[string][]*entity.BusinessRecord)}
}

// Create agrega el registro; un segundo registro para el mismo pedido devuelve domain.ErrDuplicate.
func (s *BusinessStore) Create(_ context.Context, r *entity.BusinessRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.records[r.RestaurantID] {
		if existing.OriginalOrderID == r.OriginalOrderID {
			return domain.ErrDuplicate
		}
	}
	s.records[r.RestaurantID] = append(s.records[r.RestaurantID], r)
	return nil
}

func (s *BusinessStore) GetByID(_ context.Context, restaurantID, id string) (*entity.BusinessRecord, error) {
	return s.first(restaurantID, func(r *entity.BusinessRecord) bool { return r.ID == id }), nil
}

func (s *BusinessStore) GetByOrderID(_ context.Context, restaurantID, orderID string) (*entity.BusinessRecord, error) {
	return s.first(restaurantID, func(r *entity.BusinessRecord) bool { return r.OriginalOrderID == orderID }), nil
}

func (s *BusinessStore) FindByFilter(_ context.Context, restaurantID string, f business.Filter) ([]*entity.BusinessRecord, error) {
	out := []*entity.BusinessRecord{}
	for _, r := range s.snapshot(restaurantID) {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *BusinessStore) GetTotals(_ context.Context, restaurantID string, start, end time.Time) (entity.DailyTotals, error) {
	return business.SumTotals(business.InDateRange(s.snapshot(restaurantID), start, end)), nil
}

func (s *BusinessStore) GetSalesByWaiter(_ context.Context, restaurantID string) ([]entity.SalesGroup, error) {
	return business.GroupSales(s.snapshot(restaurantID), business.ByWaiter), nil
}

func (s *BusinessStore) GetSalesByOrigin(_ context.Context, restaurantID string, start, end time.Time) ([]entity.SalesGroup, error) {
	return business.GroupSales(s.scoped(restaurantID, start, end), business.ByOrigin), nil
}

func (s *BusinessStore) GetTopItems(_ context.Context, restaurantID string, start, end time.Time, limit int) ([]entity.ItemSales, error) {
	return business.RankItems(s.scoped(restaurantID, start, end), limit), nil
}

// snapshot copia el slice del restaurante para iterar sin el lock.
func (s *BusinessStore) snapshot(restaurantID string) []*entity.BusinessRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.records[restaurantID]
	out := make([]*entity.BusinessRecord, len(src))
	copy(out, src)
	return out
}

func (s *BusinessStore) scoped(restaurantID string, start, end time.Time) []*entity.BusinessRecord {
	records := s.snapshot(restaurantID)
	if start.IsZero() && end.IsZero() {
		return records
	}
	return business.InDateRange(records, start, end)
}

func (s *BusinessStore) first(restaurantID string, match func(*entity.BusinessRecord) bool) *entity.BusinessRecord {
	for _, r := range s.snapshot(restaurantID) {
		if match(r) {
			return r
		}
	}
	return nil
}
