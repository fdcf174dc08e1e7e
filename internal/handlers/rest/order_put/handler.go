package order_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var orderUpdateDTO dto.OrderUpdate
	err = json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	orderModifyEntity := entities.OrderModify{
		ID:         &id,
		Name:       orderUpdateDTO.Name,
		CoffeeName: orderUpdateDTO.CoffeeName,
		Size:       orderUpdateDTO.Size,
		Total:      orderUpdateDTO.Total,
	}

	rowsAffected, err := h.service.UpdateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			h.writeError(w, http.StatusBadRequest, "invalid order id")
		case errors.Is(err, order.ErrConflict):
			h.writeError(w, http.StatusConflict, "order update conflict")
		default:
			h.writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response := dto.OrderAffectedResponse{
		Status: true,
		Data: &dto.OrderAffected{
			RowsAffected: rowsAffected,
		},
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
