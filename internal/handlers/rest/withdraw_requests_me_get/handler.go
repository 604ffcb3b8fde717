package withdraw_requests_me_get

import (
	"errors"
	"net/http"
	"strconv"

	"courier-ledger/internal/dto"
	"courier-ledger/internal/entities"
	"courier-ledger/internal/handlers/rest/response"
	"courier-ledger/internal/pkg/actorctx"
	"courier-ledger/internal/service/courier"
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

	limit, offset, err := parsePagination(r)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	// список всегда свой, даже если запрашивает администратор
	actor.Role = entities.RoleCourier

	requests, err := h.service.ListWithdrawals(r.Context(), actor, entities.WithdrawalFilter{
		Limit:  limit,
		Offset: offset,
	})
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

	response.JSON(w, h.log, http.StatusOK, dto.FromWithdrawals(requests))
}

func parsePagination(r *http.Request) (limit, offset uint64, err error) {
	query := r.URL.Query()
	if v := query.Get("limit"); v != "" {
		if limit, err = strconv.ParseUint(v, 10, 64); err != nil {
			return 0, 0, errInvalidPagination
		}
	}
	if v := query.Get("offset"); v != "" {
		if offset, err = strconv.ParseUint(v, 10, 64); err != nil {
			return 0, 0, errInvalidPagination
		}
	}
	return limit, offset, nil
}
