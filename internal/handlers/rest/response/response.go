package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"courier-ledger/internal/dto"
	"courier-ledger/pkg/logger"
)

var ErrUnauthenticated = errors.New("authentication required")

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error пишет {"error": ...}. Для 5xx текст ошибки наружу не отдается, только логируется.
func Error(w http.ResponseWriter, log handlerLogger, status int, err error) {
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		log.Error("request failed", logger.NewField("error", err))
		msg = http.StatusText(status)
	}
	JSON(w, log, status, dto.Error{Error: msg})
}
