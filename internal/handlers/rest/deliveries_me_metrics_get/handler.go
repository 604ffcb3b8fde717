package deliveries_me_metrics_get

import (
	"errors"
	"net/http"
	"time"

	"courier-ledger/internal/dto"
	"courier-ledger/internal/handlers/rest/response"
	"courier-ledger/internal/pkg/actorctx"
	"courier-ledger/internal/service/courier"
)

type Handler struct {
	log     handlerLogger
	service Service
	now     func() time.Time
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		now:     time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorctx.From(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, response.ErrUnauthenticated)
		return
	}

	metrics, err := h.service.Metrics(r.Context(), actor.UserID, h.now())
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidUserID):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, courier.ErrCourierNotFound):
			response.Error(w, h.log, http.StatusForbidden, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromCourierMetrics(*metrics))
}
