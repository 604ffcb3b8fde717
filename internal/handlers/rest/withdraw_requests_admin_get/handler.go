package withdraw_requests_admin_get

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"courier-ledger/internal/dto"
	"courier-ledger/internal/entities"
	"courier-ledger/internal/handlers/rest/response"
	"courier-ledger/internal/pkg/actorctx"
	"courier-ledger/internal/service/withdrawal"

	"github.com/AlekSi/pointer"
)

var errInvalidPagination = errors.New("invalid limit or offset")

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
		response.Error(w, h.log, http.StatusForbidden, withdrawal.ErrForbidden)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	requests, err := h.service.ListWithdrawals(r.Context(), actor, filter)
	if err != nil {
		switch {
		case errors.Is(err, withdrawal.ErrInvalidStatus):
			response.Error(w, h.log, http.StatusBadRequest, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromWithdrawals(requests))
}

func parseFilter(r *http.Request) (entities.WithdrawalFilter, error) {
	var (
		filter entities.WithdrawalFilter
		err    error
	)

	query := r.URL.Query()
	if v := query.Get("status"); v != "" {
		filter.Status = pointer.To(entities.WithdrawalStatus(strings.ToUpper(v)))
	}
	if v := query.Get("limit"); v != "" {
		if filter.Limit, err = strconv.ParseUint(v, 10, 64); err != nil {
			return entities.WithdrawalFilter{}, errInvalidPagination
		}
	}
	if v := query.Get("offset"); v != "" {
		if filter.Offset, err = strconv.ParseUint(v, 10, 64); err != nil {
			return entities.WithdrawalFilter{}, errInvalidPagination
		}
	}
	return filter, nil
}
