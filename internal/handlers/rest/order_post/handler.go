package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"service/internal/entities"
	"service/internal/generated/dto"
	"service/internal/service/order"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	orderModifyEntity := entities.OrderModify{
		Name:       orderCreateDTO.Name,
		CoffeeName: orderCreateDTO.CoffeeName,
		Size:       orderCreateDTO.Size,
		Total:      orderCreateDTO.Total,
	}

	id, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			h.writeError(w, http.StatusBadRequest, "missing required fields")
		case errors.Is(err, order.ErrConflict):
			h.writeError(w, http.StatusConflict, "order already exists")
		default:
			h.writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := dto.OrderCreateResponse{
		Status: true,
		Data: &dto.OrderCreated{
			ID: id,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
