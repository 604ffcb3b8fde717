package withdraw_request_review_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"courier-ledger/internal/dto"
	"courier-ledger/internal/entities"
	"courier-ledger/internal/handlers/rest/response"
	"courier-ledger/internal/pkg/actorctx"
	"courier-ledger/internal/service/courier"
	"courier-ledger/internal/service/withdrawal"
	"courier-ledger/pkg/logger"
	"courier-ledger/pkg/tx"

	"github.com/google/uuid"
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

	requestID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, withdrawal.ErrInvalidRequestID)
		return
	}

	var req dto.WithdrawalReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errInvalidBody)
		return
	}

	reviewed, err := h.service.ReviewWithdrawal(r.Context(), actor, entities.WithdrawalReview{
		RequestID: requestID,
		Status:    entities.WithdrawalStatus(strings.ToUpper(req.Status)),
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, withdrawal.ErrInvalidRequestID),
			errors.Is(err, withdrawal.ErrInvalidStatus):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, withdrawal.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, withdrawal.ErrWithdrawalNotFound),
			errors.Is(err, courier.ErrCourierNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, withdrawal.ErrInvalidTransition),
			errors.Is(err, tx.ErrSerializationFailure):
			response.Error(w, h.log, http.StatusConflict, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.Info("withdrawal reviewed",
		logger.NewField("request_id", reviewed.ID.String()),
		logger.NewField("status", reviewed.Status.String()),
		logger.NewField("reviewer", actor.UserID),
	)
	response.JSON(w, h.log, http.StatusOK, dto.FromWithdrawal(*reviewed))
}
