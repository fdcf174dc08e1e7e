package order

import (
	"context"
	"fmt"

	"service/internal/entities"
)

type Order struct {
	repository Repository
	events     EventPublisher
}

func New(repository Repository, events EventPublisher) *Order {
	return &Order{
		repository: repository,
		events:     events,
	}
}

func (s *Order) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (int64, error) {
	if orderModify.Name == nil ||
		orderModify.CoffeeName == nil ||
		orderModify.Size == nil ||
		orderModify.Total == nil {
		return 0, ErrMissingRequiredFields
	}

	id, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	s.events.OrderCreated(entities.Order{
		ID:         id,
		Name:       *orderModify.Name,
		CoffeeName: *orderModify.CoffeeName,
		Size:       *orderModify.Size,
		Total:      *orderModify.Total,
	})

	return id, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return orderEntity, nil
}

func (s *Order) GetOrders(ctx context.Context, size *string) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx, size)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

// UpdateOrder применяет частичное обновление. Пустой патч и патч по
// несуществующему id — не ошибка: возвращается 0 затронутых строк.
func (s *Order) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (int64, error) {
	if orderModify.ID == nil {
		return 0, ErrInvalidOrderID
	}

	rowsAffected, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return 0, fmt.Errorf("failed to update order: %w", err)
	}

	if rowsAffected > 0 {
		s.events.OrderUpdated(orderModify)
	}

	return rowsAffected, nil
}

func (s *Order) DeleteOrder(ctx context.Context, id int64) (int64, error) {
	rowsAffected, err := s.repository.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete order: %w", err)
	}

	if rowsAffected > 0 {
		s.events.OrderDeleted(id)
	}

	return rowsAffected, nil
}

func (s *Order) CountOrders(ctx context.Context) (int64, error) {
	count, err := s.repository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}
