package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (int64, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	query := `INSERT INTO orders (name, coffee_name, size, total)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.Name,
		orderModifyModel.CoffeeName,
		orderModifyModel.Size,
		orderModifyModel.Total,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, order.ErrConflict
		}
		return 0, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT id, name, coffee_name, size, total
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.Name,
			&orderModel.CoffeeName,
			&orderModel.Size,
			&orderModel.Total,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context, size *string) ([]entities.Order, error) {
	builder := qb.
		Select("id", "name", "coffee_name", "size", "total").
		From("orders").
		OrderBy("id")

	// опциональный фильтр
	if size != nil {
		builder = builder.Where(sq.Eq{"size": *size})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.Name,
			&orderModel.CoffeeName,
			&orderModel.Size,
			&orderModel.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// Update выполняет частичное обновление и возвращает число затронутых
// строк. Пустой патч — no-op: запрос в базу не уходит, результат 0.
// Несуществующий id — тоже 0 строк, без отдельной ошибки.
func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (int64, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	query, args, err := BuildUpdate(orderModifyModel)
	if err != nil {
		if errors.Is(err, ErrNoFieldsToUpdate) {
			return 0, nil
		}
		return 0, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM orders`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return count, nil
}
