//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModifyEntity entities.OrderModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetAll(ctx context.Context, size *string) ([]entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// EventPublisher шлет события жизненного цикла заказа.
// Публикация best-effort: ошибки логируются на стороне gateway и не
// влияют на результат операции.
type EventPublisher interface {
	OrderCreated(orderEntity entities.Order)
	OrderUpdated(orderModifyEntity entities.OrderModify)
	OrderDeleted(id int64)
}
