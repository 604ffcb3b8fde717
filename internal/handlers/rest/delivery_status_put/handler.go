package delivery_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"courier-ledger/internal/dto"
	"courier-ledger/internal/entities"
	"courier-ledger/internal/handlers/rest/response"
	"courier-ledger/internal/pkg/actorctx"
	"courier-ledger/internal/service/courier"
	"courier-ledger/internal/service/delivery"
	"courier-ledger/pkg/tx"

	"github.com/gorilla/mux"
)

var errInvalidBody = errors.New("invalid request body")

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

	var req dto.DeliveryStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errInvalidBody)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), id, actor.UserID, entities.DeliveryStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidStatus),
			errors.Is(err, courier.ErrInvalidUserID):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, courier.ErrCourierNotFound),
			errors.Is(err, courier.ErrCourierNotApproved),
			errors.Is(err, delivery.ErrNotAssignedCourier):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, delivery.ErrInvalidTransition),
			errors.Is(err, tx.ErrSerializationFailure):
			response.Error(w, h.log, http.StatusConflict, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromDelivery(*updated))
}
