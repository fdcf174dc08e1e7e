package order

// OrderDB строка таблицы orders. Кроме id все колонки nullable.
type OrderDB struct {
	ID         int64
	Name       *string
	CoffeeName *string
	Size       *string
	Total      *int64
}

type OrderModifyDB struct {
	ID         *int64
	Name       *string
	CoffeeName *string
	Size       *string
	Total      *int64
}
