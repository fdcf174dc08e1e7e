package order

import (
	"service/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID: o.ID,
	}

	if o.Name != nil {
		orderEntity.Name = *o.Name
	}
	if o.CoffeeName != nil {
		orderEntity.CoffeeName = *o.CoffeeName
	}
	if o.Size != nil {
		orderEntity.Size = *o.Size
	}
	if o.Total != nil {
		orderEntity.Total = *o.Total
	}

	return orderEntity
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}

	return &OrderModifyDB{
		ID:         orderModify.ID,
		Name:       orderModify.Name,
		CoffeeName: orderModify.CoffeeName,
		Size:       orderModify.Size,
		Total:      orderModify.Total,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
