//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"service/internal/gateway/kafka/order_events"
	order_delete "service/internal/handlers/rest/order_delete"
	order_get "service/internal/handlers/rest/order_get"
	order_post "service/internal/handlers/rest/order_post"
	order_put "service/internal/handlers/rest/order_put"
	orders_get "service/internal/handlers/rest/orders_get"
	"service/internal/handlers/tasks/order_stats"
	"service/internal/pkg/config"

	orderRepo "service/internal/repository/order"
	orderService "service/internal/service/order"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
)

type (
	StatsInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_get.Service
	orders_get.Service
	order_post.Service
	order_put.Service
	order_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideQuerier,
		provideStatsInterval,

		provideOrderRepository,
		provideOrderEventsGateway,

		provideServiceOrder,

		provideOrderStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.EventPublisher), new(*order_events.Gateway)),

		wire.Bind(new(order_stats.Service), new(*orderService.Order)),
	)
	return &Application{}, nil
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOrderEventsGateway(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *order_events.Gateway {
	return order_events.New(log, producer, cfg.Kafka.Topic)
}

func provideServiceOrder(
	repository orderService.Repository,
	events orderService.EventPublisher,
) *orderService.Order {
	return orderService.New(repository, events)
}

func provideStatsInterval(cfg *config.Config) StatsInterval {
	return StatsInterval(cfg.Tasks.OrderStatsInterval)
}

func provideOrderStatsTask(
	log logger.Logger,
	orderService order_stats.Service,
	interval StatsInterval,
) *order_stats.OrderStats {
	return order_stats.NewOrderStats(log, orderService, time.Duration(interval))
}

func provideTaskList(
	orderStatsTask *order_stats.OrderStats,
) []background.Task {
	return []background.Task{
		orderStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
