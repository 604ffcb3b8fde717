package rule_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"courier-ledger/internal/dto"
	"courier-ledger/internal/entities"
	"courier-ledger/internal/handlers/rest/response"
	"courier-ledger/internal/pkg/actorctx"
	"courier-ledger/internal/service/rules"
	"courier-ledger/pkg/logger"
	"courier-ledger/pkg/tx"

	"github.com/gorilla/mux"
)

var (
	errInvalidBody = errors.New("invalid request body")
	errForbidden   = errors.New("admin role required")
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
	if !actor.IsAdmin() {
		response.Error(w, h.log, http.StatusForbidden, errForbidden)
		return
	}

	key := entities.RuleKey(mux.Vars(r)["key"])

	var req dto.RuleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errInvalidBody)
		return
	}

	record, err := h.service.SetRule(r.Context(), key, req.Value, actor.UserID)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrUnknownRuleKey):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, rules.ErrInvalidRuleValue),
			errors.Is(err, rules.ErrInvalidAdminID):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, tx.ErrSerializationFailure):
			response.Error(w, h.log, http.StatusConflict, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.Info("courier rule updated",
		logger.NewField("key", record.Key.String()),
		logger.NewField("value", record.Value.String()),
		logger.NewField("admin", actor.UserID),
	)
	response.JSON(w, h.log, http.StatusOK, dto.FromRuleRecord(*record))
}
