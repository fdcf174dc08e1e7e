package entities

type Order struct {
	ID         int64
	Name       string
	CoffeeName string
	Size       string
	Total      int64
}

// OrderModify частичное изменение заказа: nil — поле не трогаем,
// не-nil — новое значение. ID клиентом не изменяется.
type OrderModify struct {
	ID         *int64
	Name       *string
	CoffeeName *string
	Size       *string
	Total      *int64
}
