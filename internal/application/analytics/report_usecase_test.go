package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BarApp-api/internal/application/dto"
	"github.com/jhoicas/BarApp-api/internal/domain"
	"github.com/jhoicas/BarApp-api/internal/domain/access"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
	"github.com/jhoicas/BarApp-api/internal/infrastructure/memory"
)

// reportPolicy ADMIN y MANAGER pueden reportar.
type reportPolicy struct{}

func (reportPolicy) Allowed(role entity.WorkerRole, _ string, action access.Action) (bool, error) {
	return action != access.ActionReport || role == entity.RoleAdmin || role == entity.RoleManager, nil
}

var (
	admin  = access.Principal{UserID: "u-1", RestaurantID: "rest-1", Role: entity.RoleAdmin}
	waiter = access.Principal{UserID: "u-2", RestaurantID: "rest-1", Role: entity.RoleWaiter}
	// viernes 16 de octubre de 2026, 22:00 UTC
	now = time.Date(2026, 10, 16, 22, 0, 0, 0, time.UTC)
)

func seed(t *testing.T, store *memory.BusinessStore, restaurantID, orderID, waiterID string, total int64, at time.Time, origin entity.Origin, items ...entity.BusinessItem) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), &entity.BusinessRecord{
		ID:              orderID + "-id",
		RestaurantID:    restaurantID,
		OriginalOrderID: orderID,
		Date:            at,
		Total:           decimal.NewFromInt(total),
		Discount:        decimal.Zero,
		Origin:          origin,
		WaiterID:        waiterID,
		WaiterName:      "Mesero " + waiterID,
		Items:           items,
		CreatedAt:       at,
	}))
}

func item(id string, qty int) entity.BusinessItem {
	return entity.BusinessItem{ItemID: id, ItemName: "Item " + id, Category: entity.CategoryDrink, Quantity: qty}
}

// newReports registra W1 100+50, W2 30 hoy, un pedido de ayer y otro de otro restaurante.
func newReports(t *testing.T) (*ReportUseCase, *memory.BusinessStore) {
	store := memory.NewBusinessStore()
	seed(t, store, "rest-1", "o1", "W1", 100, now.Add(-2*time.Hour), entity.OriginInHouse, item("A", 2), item("B", 1))
	seed(t, store, "rest-1", "o2", "W1", 50, now.Add(-time.Hour), entity.OriginWhatsApp, item("A", 3), item("C", 8))
	seed(t, store, "rest-1", "o3", "W2", 30, now, entity.OriginInHouse)
	seed(t, store, "rest-1", "o4", "W2", 20, now.Add(-24*time.Hour), entity.OriginPhone, item("B", 4))
	seed(t, store, "rest-2", "o1", "W9", 999, now, entity.OriginInHouse, item("Z", 50))

	uc := NewReportUseCase(store, access.NewGuard(reportPolicy{}), time.UTC)
	uc.now = func() time.Time { return now }
	return uc, store
}

func TestReportUseCase_DailySummary(t *testing.T) {
	uc, _ := newReports(t)

	s, err := uc.DailySummary(context.Background(), admin, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", s.Date)
	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, "180", s.TotalRevenue.String())
	assert.Equal(t, "60", s.AverageTicket.String())

	empty, err := uc.DailySummary(context.Background(), admin, "2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalOrders)
	assert.True(t, empty.TotalRevenue.IsZero())
	assert.True(t, empty.AverageTicket.IsZero())

	_, err = uc.DailySummary(context.Background(), admin, "16-10-2026")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReportUseCase_AverageTicketByWaiter(t *testing.T) {
	uc, _ := newReports(t)

	rows, err := uc.AverageTicketByWaiter(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "W1", rows[0].WaiterID)
	assert.Equal(t, "Mesero W1", rows[0].WaiterName)
	assert.Equal(t, 2, rows[0].TotalOrders)
	assert.Equal(t, "150", rows[0].TotalRevenue.String())
	assert.Equal(t, "75", rows[0].AverageTicket.String())

	assert.Equal(t, "W2", rows[1].WaiterID)
	assert.Equal(t, "50", rows[1].TotalRevenue.String())
	assert.Equal(t, "25", rows[1].AverageTicket.String())
}

func TestReportUseCase_TotalSalesByOrigin(t *testing.T) {
	uc, _ := newReports(t)

	rows, err := uc.TotalSalesByOrigin(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "IN_HOUSE", rows[0].Origin)
	assert.Equal(t, 2, rows[0].TotalOrders)
	assert.Equal(t, "65", rows[0].AverageTicket.String())
}

func TestReportUseCase_TopSellingItems(t *testing.T) {
	uc, _ := newReports(t)

	top, err := uc.TopSellingItems(context.Background(), admin, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, dto.TopItemDTO{ItemID: "C", ItemName: "Item C", Category: "DRINK", TotalUnitsSold: 8}, top[0])
	assert.Equal(t, "A", top[1].ItemID)
	assert.Equal(t, 5, top[1].TotalUnitsSold)

	all, err := uc.TopSellingItems(context.Background(), admin, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3, "limit 0 usa el valor por defecto")
}

func TestReportUseCase_WaiterNoPuedeReportar(t *testing.T) {
	uc, _ := newReports(t)
	ctx := context.Background()

	_, err := uc.DailySummary(ctx, waiter, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.AverageTicketByWaiter(ctx, waiter)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.TotalSalesByOrigin(ctx, waiter)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.TopSellingItems(ctx, waiter, 5)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.Dashboard(ctx, waiter)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReportUseCase_Dashboard(t *testing.T) {
	uc, _ := newReports(t)

	d, err := uc.Dashboard(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Today.TotalOrders)
	assert.Equal(t, 4, d.Month.TotalOrders)
	assert.Equal(t, "2026-10-01", d.Month.Date)
	assert.Equal(t, "200", d.Month.TotalRevenue.String())
	assert.Equal(t, "Octubre 2026", d.DateLabel)
	require.NotEmpty(t, d.TopItems)
	assert.Equal(t, "C", d.TopItems[0].ItemID)
	assert.Equal(t, "A", d.TopItems[1].ItemID, "A y B suman 5 en el mes; desempata por id")
	assert.Equal(t, "B", d.TopItems[2].ItemID)
}

// failingTopStore falla en GetTopItems; GetTotals espera a que se cancele el contexto.
type failingTopStore struct {
	*memory.BusinessStore
	err error
}

func (s failingTopStore) GetTotals(ctx context.Context, _ string, _, _ time.Time) (entity.DailyTotals, error) {
	<-ctx.Done()
	return entity.DailyTotals{}, ctx.Err()
}

func (s failingTopStore) GetTopItems(context.Context, string, time.Time, time.Time, int) ([]entity.ItemSales, error) {
	return nil, s.err
}

func TestReportUseCase_Dashboard_PrimerErrorCancela(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := NewReportUseCase(failingTopStore{BusinessStore: memory.NewBusinessStore(), err: boom},
		access.NewGuard(reportPolicy{}), time.UTC)
	uc.now = func() time.Time { return now }

	done := make(chan error, 1)
	go func() {
		_, err := uc.Dashboard(context.Background(), admin)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "dashboard: top ítems")
	case <-time.After(2 * time.Second):
		t.Fatal("Dashboard no canceló las consultas pendientes")
	}
}

// ── Cierre diario en PDF ──────────────────────────────────────────────────────

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) GenerateDailyReport(ctx context.Context, data dto.DailyReportData) ([]byte, error) {
	args := m.Called(ctx, data)
	if b := args.Get(0); b != nil {
		return b.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestDailyReportUseCase_Generate(t *testing.T) {
	uc, _ := newReports(t)
	gen := new(mockGenerator)
	gen.On("GenerateDailyReport", mock.Anything, mock.MatchedBy(func(d dto.DailyReportData) bool {
		return d.RestaurantID == "rest-1" &&
			d.Summary.TotalOrders == 3 &&
			len(d.ByOrigin) == 2 &&
			len(d.TopItems) == 3 && d.TopItems[0].ItemID == "C"
	})).Return([]byte("%PDF-1.4"), nil)

	pdf, filename, err := NewDailyReportUseCase(uc, gen).Generate(context.Background(), admin, "2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
	assert.Equal(t, "cierre-2026-10-16.pdf", filename)
	gen.AssertExpectations(t)
}

func TestDailyReportUseCase_Errores(t *testing.T) {
	uc, _ := newReports(t)
	gen := new(mockGenerator)
	daily := NewDailyReportUseCase(uc, gen)

	_, _, err := daily.Generate(context.Background(), waiter, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, _, err = daily.Generate(context.Background(), admin, "ayer")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	gen.AssertNotCalled(t, "GenerateDailyReport", mock.Anything, mock.Anything)

	gen.On("GenerateDailyReport", mock.Anything, mock.Anything).Return(nil, errors.New("fuente no encontrada"))
	_, _, err = daily.Generate(context.Background(), admin, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuente no encontrada")
}
