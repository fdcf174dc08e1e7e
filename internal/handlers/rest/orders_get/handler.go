package orders_get

import (
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"
	"service/internal/generated/dto"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var size *string
	if val := r.URL.Query().Get("size"); val != "" {
		size = &val
	}

	orders, err := h.service.GetOrders(r.Context(), size)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	orderDTOs := make([]dto.Order, 0, len(orders))
	for _, orderEntity := range orders {
		orderDTOs = append(orderDTOs, dto.Order{
			ID:         orderEntity.ID,
			Name:       orderEntity.Name,
			CoffeeName: orderEntity.CoffeeName,
			Size:       orderEntity.Size,
			Total:      orderEntity.Total,
		})
	}

	response := dto.OrderListResponse{
		Status: true,
		Data:   &orderDTOs,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{
		Status:  false,
		Message: pointer.To(message),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
