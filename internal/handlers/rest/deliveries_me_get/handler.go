package deliveries_me_get

import (
	"errors"
	"net/http"

	"courier-ledger/internal/dto"
	"courier-ledger/internal/handlers/rest/response"
	"courier-ledger/internal/pkg/actorctx"
	"courier-ledger/internal/service/courier"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorctx.From(r.Context())
	if !ok {
		response.Error(w, h.log, http.StatusUnauthorized, response.ErrUnauthenticated)
		return
	}

	views, err := h.service.ListMine(r.Context(), actor.UserID)
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

	response.JSON(w, h.log, http.StatusOK, dto.FromDeliveryViews(views))
}
