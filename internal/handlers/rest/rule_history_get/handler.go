package rule_history_get

import (
	"errors"
	"net/http"

	"courier-ledger/internal/dto"
	"courier-ledger/internal/entities"
	"courier-ledger/internal/handlers/rest/response"
	"courier-ledger/internal/service/rules"

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
	key := entities.RuleKey(mux.Vars(r)["key"])

	records, err := h.service.History(r.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrUnknownRuleKey):
			response.Error(w, h.log, http.StatusNotFound, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromRuleRecords(records))
}
