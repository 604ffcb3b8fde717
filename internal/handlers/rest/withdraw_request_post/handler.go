package withdraw_request_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"courier-ledger/internal/dto"
	"courier-ledger/internal/handlers/rest/response"
	"courier-ledger/internal/pkg/actorctx"
	"courier-ledger/internal/service/courier"
	"courier-ledger/internal/service/withdrawal"
	"courier-ledger/pkg/logger"
	"courier-ledger/pkg/tx"
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

	var req dto.WithdrawalCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errInvalidBody)
		return
	}

	created, err := h.service.RequestWithdrawal(r.Context(), actor.UserID, req.ToDraft())
	if err != nil {
		switch {
		case errors.Is(err, withdrawal.ErrInvalidAmount),
			errors.Is(err, withdrawal.ErrInvalidMethod),
			errors.Is(err, withdrawal.ErrInvalidAccountRef),
			errors.Is(err, courier.ErrInvalidUserID):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, courier.ErrCourierNotFound),
			errors.Is(err, courier.ErrCourierNotApproved):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, withdrawal.ErrBelowMinimum),
			errors.Is(err, withdrawal.ErrInsufficientBalance):
			response.Error(w, h.log, http.StatusUnprocessableEntity, err)
		case errors.Is(err, tx.ErrSerializationFailure):
			response.Error(w, h.log, http.StatusConflict, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.Info("withdrawal requested",
		logger.NewField("request_id", created.ID.String()),
		logger.NewField("courier_id", created.CourierID),
	)
	response.JSON(w, h.log, http.StatusCreated, dto.FromWithdrawal(*created))
}
