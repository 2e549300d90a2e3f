package usecase

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
	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

// ── Mocks ─────────────────────────────────────────────────────────────────────

type mockBusinessRepo struct {
	mock.Mock
}

func (m *mockBusinessRepo) Create(ctx context.Context, r *entity.BusinessRecord) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockBusinessRepo) GetByID(ctx context.Context, restaurantID, id string) (*entity.BusinessRecord, error) {
	args := m.Called(ctx, restaurantID, id)
	if r := args.Get(0); r != nil {
		return r.(*entity.BusinessRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBusinessRepo) GetByOrderID(ctx context.Context, restaurantID, orderID string) (*entity.BusinessRecord, error) {
	args := m.Called(ctx, restaurantID, orderID)
	if r := args.Get(0); r != nil {
		return r.(*entity.BusinessRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBusinessRepo) FindByFilter(ctx context.Context, restaurantID string, f business.Filter) ([]*entity.BusinessRecord, error) {
	args := m.Called(ctx, restaurantID, f)
	if r := args.Get(0); r != nil {
		return r.([]*entity.BusinessRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

// rolePolicy permite report solo a ADMIN/MANAGER y create a cualquier rol.
type rolePolicy struct{}

func (rolePolicy) Allowed(role entity.WorkerRole, _ string, action access.Action) (bool, error) {
	if action == access.ActionReport {
		return role == entity.RoleAdmin || role == entity.RoleManager, nil
	}
	return true, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

var (
	fixedNow = time.Date(2026, 10, 16, 23, 0, 0, 0, time.UTC)
	waiter   = access.Principal{UserID: "u-1", RestaurantID: "rest-1", Role: entity.RoleWaiter}
	manager  = access.Principal{UserID: "u-2", RestaurantID: "rest-1", Role: entity.RoleManager}
)

func ptr[T any](v T) *T { return &v }

func newBusinessUC(repo *mockBusinessRepo) *BusinessUseCase {
	uc := NewBusinessUseCase(repo, access.NewGuard(rolePolicy{}))
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func validRequest(orderID string) dto.CreateBusinessRequest {
	zero := decimal.Zero
	total := decimal.NewFromInt(45)
	return dto.CreateBusinessRequest{
		OriginalOrderID: ptr(orderID),
		Date:            ptr(time.Date(2026, 10, 16, 21, 40, 0, 0, time.UTC)),
		WeekDay:         ptr("FRIDAY"),
		HourSlot:        ptr("21:00"),
		Subtotal:        &total,
		Discount:        &zero,
		Total:           &total,
		PaymentMethod:   ptr("CASH"),
		Origin:          ptr("IN_HOUSE"),
		Items: []business.DraftItem{{
			ItemID: ptr("A"), ItemName: ptr("Feijoada"), Category: ptr("MAIN_COURSE"),
			Quantity: ptr(1), UnitPrice: &total, TotalPrice: &total,
		}},
		TotalItemsCount:      ptr(1),
		TimeToStartPreparing: ptr(2),
		TimePreparing:        ptr(20),
		OrderType:            ptr("TAKEOUT"),
		WaiterID:             ptr("w-1"),
		WaiterName:           ptr("Ana"),
		IsCanceled:           ptr(false),
	}
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestBusinessUseCase_Create_AsignaIdentidadYRestaurante(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.BusinessRecord) bool {
		return r.RestaurantID == "rest-1" && r.ID != "" && r.CreatedAt.Equal(fixedNow)
	})).Return(nil)

	out, err := newBusinessUC(repo).Create(context.Background(), waiter, validRequest("ord-9"))
	require.NoError(t, err)
	assert.Equal(t, "ord-9", out.OriginalOrderID)
	assert.Equal(t, "rest-1", out.RestaurantID)
	assert.Equal(t, "TAKEOUT", out.OrderType)
	repo.AssertExpectations(t)
}

func TestBusinessUseCase_Create_InvalidoNoPersiste(t *testing.T) {
	repo := new(mockBusinessRepo)
	req := validRequest("ord-9")
	req.WaiterID = nil

	_, err := newBusinessUC(repo).Create(context.Background(), waiter, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "waiterId")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBusinessUseCase_Create_Duplicado(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

	_, err := newBusinessUC(repo).Create(context.Background(), waiter, validRequest("ord-9"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "Relatory for order with id ord-9 already exists.", err.Error())
}

func TestBusinessUseCase_Create_SinRestaurante(t *testing.T) {
	repo := new(mockBusinessRepo)
	_, err := newBusinessUC(repo).Create(context.Background(), access.Principal{Role: entity.RoleWaiter}, validRequest("ord-9"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBusinessUseCase_Create_ErrorDeAlmacenamiento(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("conexión perdida"))

	_, err := newBusinessUC(repo).Create(context.Background(), waiter, validRequest("ord-9"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "conexión perdida")
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

func TestBusinessUseCase_GetByID(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("GetByID", mock.Anything, "rest-1", "abc").Return(&entity.BusinessRecord{ID: "abc", RestaurantID: "rest-1"}, nil)
	repo.On("GetByID", mock.Anything, "rest-1", "zzz").Return(nil, nil)
	uc := newBusinessUC(repo)

	out, err := uc.GetByID(context.Background(), waiter, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", out.ID)

	_, err = uc.GetByID(context.Background(), waiter, "zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Relatory with id zzz not found.", err.Error())
}

func TestBusinessUseCase_GetByOrderID_NoEncontrado(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("GetByOrderID", mock.Anything, "rest-1", "ord-404").Return(nil, nil)

	_, err := newBusinessUC(repo).GetByOrderID(context.Background(), waiter, "ord-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Relatory for order with id ord-404 not found.", err.Error())
}

// ── Consultas por campo ───────────────────────────────────────────────────────

func TestBusinessQueryUseCase_Query(t *testing.T) {
	repo := new(mockBusinessRepo)
	repo.On("FindByFilter", mock.Anything, "rest-1", mock.MatchedBy(func(f business.Filter) bool {
		return f.Field.Key == "customerCount" && f.Lower == 0 && f.Upper == 0
	})).Return([]*entity.BusinessRecord{{ID: "r1"}}, nil)

	uc := NewBusinessQueryUseCase(repo, access.NewGuard(rolePolicy{}), time.UTC)
	out, err := uc.Find(context.Background(), manager, "customer-count", "0", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "r1", out[0].ID)
	repo.AssertExpectations(t)
}

func TestBusinessQueryUseCase_Errores(t *testing.T) {
	repo := new(mockBusinessRepo)
	uc := NewBusinessQueryUseCase(repo, access.NewGuard(rolePolicy{}), time.UTC)

	_, err := uc.Find(context.Background(), waiter, "discount", "1", "2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Find(context.Background(), manager, "discount", "", "2")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Find(context.Background(), manager, "no-existe", "1", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	repo.AssertNotCalled(t, "FindByFilter", mock.Anything, mock.Anything, mock.Anything)
}
