package business

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BarApp-api/internal/domain"
	"github.com/jhoicas/BarApp-api/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func dec(s string) *decimal.Decimal { return ptr(decimal.RequireFromString(s)) }

// validDraft pedido de mesa completo.
func validDraft() Draft {
	return Draft{
		OriginalOrderID: ptr("ord-1"),
		Date:            ptr(time.Date(2026, 10, 16, 20, 15, 0, 0, time.UTC)),
		WeekDay:         ptr("FRIDAY"),
		HourSlot:        ptr("20:00"),
		Subtotal:        dec("120"),
		Discount:        dec("0"),
		Total:           dec("120"),
		PaymentMethod:   ptr("PIX"),
		Origin:          ptr("IN_HOUSE"),
		Items: []DraftItem{
			{ItemID: ptr("A"), ItemName: ptr("Picanha"), Category: ptr("MAIN_COURSE"), Quantity: ptr(1), UnitPrice: dec("100"), TotalPrice: dec("100")},
			{ItemID: ptr("C"), ItemName: ptr("Caipirinha"), Category: ptr("ALCOHOLIC_DRINK"), Quantity: ptr(2), UnitPrice: dec("10"), TotalPrice: dec("20")},
		},
		TotalItemsCount:      ptr(3),
		TimeToStartPreparing: ptr(0),
		TimePreparing:        ptr(15),
		OrderType:            ptr("TABLE"),
		WaiterID:             ptr("w-1"),
		WaiterName:           ptr("Ana"),
		IsCanceled:           ptr(false),
	}
}

func requireValidation(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "se esperaba *ValidationError, llegó %T", err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	return vErr
}

func TestValidate_AcceptsCompleteRecord(t *testing.T) {
	rec, err := Validate(validDraft())
	require.NoError(t, err)

	assert.Equal(t, "ord-1", rec.OriginalOrderID)
	assert.Equal(t, entity.WeekDayFriday, rec.WeekDay)
	assert.Equal(t, entity.PaymentPix, rec.PaymentMethod)
	assert.Equal(t, entity.OrderTypeTable, rec.OrderType)
	assert.True(t, rec.Discount.IsZero(), "descuento 0 es un valor válido")
	assert.Equal(t, 0, rec.TimeToStartPreparing)
	assert.Nil(t, rec.DeliveryFee)
	require.Len(t, rec.Items, 2)
	assert.Equal(t, entity.CategoryAlcoholicDrink, rec.Items[1].Category)
}

func TestValidate_ReportsEveryMissingTopLevelField(t *testing.T) {
	d := validDraft()
	d.Date = nil
	d.WaiterName = ptr("   ")
	d.IsCanceled = nil

	vErr := requireValidation(t, errorOf(Validate(d)))
	assert.Equal(t, "Missing required fields: date, waiterName, isCanceled", vErr.Message)
	assert.Equal(t, []string{"date", "waiterName", "isCanceled"}, vErr.Fields)
}

func TestValidate_EmptyDraftListsAllSeventeen(t *testing.T) {
	vErr := requireValidation(t, errorOf(Validate(Draft{})))
	assert.Len(t, vErr.Fields, 17)
	assert.Contains(t, vErr.Fields, "itemsDenormalized")
}

func TestValidate_MissingItemFieldsNamedByIndex(t *testing.T) {
	d := validDraft()
	d.Items[0].Category = nil
	d.Items[1].UnitPrice = nil
	d.Items[1].Quantity = nil

	vErr := requireValidation(t, errorOf(Validate(d)))
	assert.Equal(t,
		"Missing required fields in itemsDenormalized: itemsDenormalized[0].category, itemsDenormalized[1].quantity, itemsDenormalized[1].unitPrice",
		vErr.Message)
}

func TestValidate_EmptyItemListIsPresent(t *testing.T) {
	d := validDraft()
	d.Items = []DraftItem{}
	_, err := Validate(d)
	assert.NoError(t, err)
}

func TestValidate_EnumOrder(t *testing.T) {
	// weekDay se revisa antes que paymentMethod
	d := validDraft()
	d.WeekDay = ptr("FUNDAY")
	d.PaymentMethod = ptr("BITCOIN")
	vErr := requireValidation(t, errorOf(Validate(d)))
	assert.Equal(t,
		`Invalid weekDay value: "FUNDAY". Valid week days: SUNDAY, MONDAY, TUESDAY, WEDNESDAY, THURSDAY, FRIDAY, SATURDAY`,
		vErr.Message)

	d = validDraft()
	d.Origin = ptr("DRONE")
	vErr = requireValidation(t, errorOf(Validate(d)))
	assert.Equal(t, []string{"origin"}, vErr.Fields)
	assert.Equal(t, Origins.Values(), vErr.Allowed)
}

func TestValidate_FirstInvalidCategoryWins(t *testing.T) {
	d := validDraft()
	d.Items[0].Category = ptr("SNACK")
	d.Items[1].Category = ptr("SOUP")
	d.OrderType = ptr("DRIVE_THRU")

	vErr := requireValidation(t, errorOf(Validate(d)))
	assert.Contains(t, vErr.Message, `"SNACK"`)
	assert.NotContains(t, vErr.Message, "SOUP")
}

func TestValidate_DeliveryRequiresDeliveryFields(t *testing.T) {
	d := validDraft()
	d.OrderType = ptr("DELIVERY")

	vErr := requireValidation(t, errorOf(Validate(d)))
	assert.Equal(t,
		"Missing required fields for delivery orders: deliveryFee, timeToDelivery, deliveryNeighborhood",
		vErr.Message)

	d.DeliveryFee = dec("0")
	d.TimeToDelivery = ptr(25)
	d.DeliveryNeighborhood = ptr("Centro")
	rec, err := Validate(d)
	require.NoError(t, err)
	assert.True(t, rec.IsDelivery())
	require.NotNil(t, rec.DeliveryFee)
	assert.True(t, rec.DeliveryFee.IsZero())
}

func TestValidate_DeliveryFieldsOptionalForTable(t *testing.T) {
	d := validDraft()
	d.CustomerCount = ptr(0)
	rec, err := Validate(d)
	require.NoError(t, err)
	require.NotNil(t, rec.CustomerCount)
	assert.Equal(t, 0, *rec.CustomerCount)
}

func TestValidate_DoesNotAliasDraft(t *testing.T) {
	d := validDraft()
	d.CustomerCount = ptr(4)
	rec, err := Validate(d)
	require.NoError(t, err)

	*d.CustomerCount = 9
	assert.Equal(t, 4, *rec.CustomerCount)
}

func errorOf(_ *entity.BusinessRecord, err error) error { return err }
