package entity

// WeekDay día de la semana en que se cerró el pedido.
type WeekDay string

const (
	WeekDaySunday    WeekDay = "SUNDAY"
	WeekDayMonday    WeekDay = "MONDAY"
	WeekDayTuesday   WeekDay = "TUESDAY"
	WeekDayWednesday WeekDay = "WEDNESDAY"
	WeekDayThursday  WeekDay = "THURSDAY"
	WeekDayFriday    WeekDay = "FRIDAY"
	WeekDaySaturday  WeekDay = "SATURDAY"
)

// PaymentMethod medio de pago del pedido.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "CASH"
	PaymentCreditCard  PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard   PaymentMethod = "DEBIT_CARD"
	PaymentPix         PaymentMethod = "PIX"
	PaymentMealVoucher PaymentMethod = "MEAL_VOUCHER"
)

// Origin canal por el que llegó el pedido.
type Origin string

const (
	OriginInHouse     Origin = "IN_HOUSE"
	OriginDeliveryApp Origin = "DELIVERY_APP"
	OriginPhone       Origin = "PHONE"
	OriginWhatsApp    Origin = "WHATSAPP"
	OriginWebsite     Origin = "WEBSITE"
)

// ItemCategory categoría de un ítem del menú.
type ItemCategory string

const (
	CategoryAppetizer      ItemCategory = "APPETIZER"
	CategoryMainCourse     ItemCategory = "MAIN_COURSE"
	CategorySideDish       ItemCategory = "SIDE_DISH"
	CategoryDessert        ItemCategory = "DESSERT"
	CategoryDrink          ItemCategory = "DRINK"
	CategoryAlcoholicDrink ItemCategory = "ALCOHOLIC_DRINK"
)

// OrderType modalidad de atención.
type OrderType string

const (
	OrderTypeTable    OrderType = "TABLE"
	OrderTypeDelivery OrderType = "DELIVERY"
	OrderTypeTakeout  OrderType = "TAKEOUT"
)

// WorkerRole rol del trabajador autenticado.
type WorkerRole string

const (
	RoleAdmin     WorkerRole = "ADMIN"
	RoleManager   WorkerRole = "MANAGER"
	RoleChef      WorkerRole = "CHEF"
	RoleBartender WorkerRole = "BARTENDER"
	RoleWaiter    WorkerRole = "WAITER"
	RoleDelivery  WorkerRole = "DELIVERY"
)

// WeekDayOf traduce time.Weekday al enum del dominio.
func WeekDayOf(d int) WeekDay {
	days := [...]WeekDay{
		WeekDaySunday, WeekDayMonday, WeekDayTuesday, WeekDayWednesday,
		WeekDayThursday, WeekDayFriday, WeekDaySaturday,
	}
	if d < 0 || d >= len(days) {
		return ""
	}
	return days[d]
}
