// AngelaMos | 2026
// handler.go

package request

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/redconnect-dev/redconnect/internal/core"
	"github.com/redconnect-dev/redconnect/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/requests", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Submit)
		r.Get("/", h.ListMine)
	})
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/requests", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.ListAll)
		r.Post("/{requestID}/approve", h.Approve)
		r.Post("/{requestID}/reject", h.Reject)
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	request, err := h.service.Submit(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, err.Error())
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToRequestResponse(request))
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	requests, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToRequestResponseList(requests))
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListAll(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToRequestResponseList(requests))
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, StatusApproved)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, StatusRejected)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, to Status) {
	requestID, err := parseRequestID(r)
	if err != nil {
		core.BadRequest(w, "Invalid request ID")
		return
	}

	adminID := middleware.GetUserID(r.Context())

	var request *BloodRequest
	if to == StatusApproved {
		request, err = h.service.Approve(r.Context(), adminID, requestID)
	} else {
		request, err = h.service.Reject(r.Context(), adminID, requestID)
	}
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "Blood request not found")
		case errors.Is(err, core.ErrInvalidTransition):
			core.Conflict(w, err.Error())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToRequestResponse(request))
}

func parseRequestID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
}
