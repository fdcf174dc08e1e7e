package order_stats

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	CountOrders(ctx context.Context) (int64, error)
}

// OrderStats периодически снимает количество заказов в гейдж Prometheus.
type OrderStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderStats(log logger.Logger, service Service, interval time.Duration) *OrderStats {
	return &OrderStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	count, err := o.service.CountOrders(ctxWithTimeout)
	if err != nil {
		return err
	}

	OrdersTotal.Set(float64(count))

	o.log.With(
		logger.NewField("orders", count),
	).Debug("order stats")

	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}
