package delivery_get

import (
	"errors"
	"net/http"
	"strconv"

	"courier-ledger/internal/dto"
	"courier-ledger/internal/handlers/rest/response"
	"courier-ledger/internal/pkg/actorctx"
	"courier-ledger/internal/service/courier"
	"courier-ledger/internal/service/delivery"

	"github.com/gorilla/mux"
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

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, delivery.ErrInvalidDeliveryID)
		return
	}

	view, err := h.service.Get(r.Context(), id, actor)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, delivery.ErrForbidden),
			errors.Is(err, courier.ErrCourierNotFound):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromDeliveryView(*view))
}
