package greeting_get

import (
	"net/http"

	"service/pkg/logger"
)

const greeting = "MAY THE FORCE BE WITH YOU"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err := w.Write([]byte(greeting))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write response")
	}
}
