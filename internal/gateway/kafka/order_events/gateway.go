package order_events

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
	"service/pkg/logger"
)

const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderDeleted = "order.deleted"
)

type orderEvent struct {
	Event      string    `json:"event"`
	OrderID    int64     `json:"order_id"`
	Name       *string   `json:"name,omitempty"`
	CoffeeName *string   `json:"coffee_name,omitempty"`
	Size       *string   `json:"size,omitempty"`
	Total      *int64    `json:"total,omitempty"`
	EventTime  time.Time `json:"event_time"`
}

// Gateway публикует события жизненного цикла заказа.
// Публикация best-effort: ошибка логируется и не поднимается наверх,
// запрос клиента от нее не падает.
type Gateway struct {
	log      gatewayLogger
	producer SyncProducer
	topic    string
}

func New(log gatewayLogger, producer SyncProducer, topic string) *Gateway {
	gatewayLog := log.With(
		logger.NewField("topic", topic),
	)

	return &Gateway{
		log:      gatewayLog,
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) OrderCreated(orderEntity entities.Order) {
	g.publish(orderEvent{
		Event:      EventOrderCreated,
		OrderID:    orderEntity.ID,
		Name:       &orderEntity.Name,
		CoffeeName: &orderEntity.CoffeeName,
		Size:       &orderEntity.Size,
		Total:      &orderEntity.Total,
	})
}

func (g *Gateway) OrderUpdated(orderModifyEntity entities.OrderModify) {
	if orderModifyEntity.ID == nil {
		return
	}

	g.publish(orderEvent{
		Event:      EventOrderUpdated,
		OrderID:    *orderModifyEntity.ID,
		Name:       orderModifyEntity.Name,
		CoffeeName: orderModifyEntity.CoffeeName,
		Size:       orderModifyEntity.Size,
		Total:      orderModifyEntity.Total,
	})
}

func (g *Gateway) OrderDeleted(id int64) {
	g.publish(orderEvent{
		Event:   EventOrderDeleted,
		OrderID: id,
	})
}

func (g *Gateway) publish(event orderEvent) {
	event.EventTime = time.Now().UTC()

	val, err := json.Marshal(event)
	if err != nil {
		OrderEventsPublishedTotal.WithLabelValues(event.Event, "error").Inc()
		g.log.With(
			logger.NewField("event", event.Event),
			logger.NewField("error", err),
		).Error("marshal order event")
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(val),
	}

	partition, offset, err := g.producer.SendMessage(msg)
	if err != nil {
		OrderEventsPublishedTotal.WithLabelValues(event.Event, "error").Inc()
		g.log.With(
			logger.NewField("event", event.Event),
			logger.NewField("order", event.OrderID),
			logger.NewField("error", err),
		).Error("publish order event")
		return
	}

	OrderEventsPublishedTotal.WithLabelValues(event.Event, "ok").Inc()
	g.log.With(
		logger.NewField("event", event.Event),
		logger.NewField("order", event.OrderID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("order event published")
}
