// AngelaMos | 2026
// handler.go

package stock

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/redconnect-dev/redconnect/internal/core"
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

// RegisterPublicRoutes exposes the anonymous availability search used by
// people looking for blood near them.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/stock/search", h.SearchAvailability)
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/stock", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.Search)
		r.Post("/", h.Add)
		r.Put("/{stockID}", h.SetUnits)
	})
}

func (h *Handler) SearchAvailability(w http.ResponseWriter, r *http.Request) {
	bloodGroup := r.URL.Query().Get("blood_group")
	location := r.URL.Query().Get("location")

	entries, err := h.service.Availability(r.Context(), bloodGroup, location)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "blood_group is required")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToEntryResponseList(entries))
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	params := SearchParams{
		BloodGroup: r.URL.Query().Get("blood_group"),
		Location:   r.URL.Query().Get("location"),
	}

	entries, err := h.service.Search(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToEntryResponseList(entries))
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	entry, err := h.service.Add(r.Context(), req.BloodGroup, req.Units, req.Location)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "units must be a positive integer")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToEntryResponse(entry))
}

func (h *Handler) SetUnits(w http.ResponseWriter, r *http.Request) {
	stockID, err := strconv.ParseInt(chi.URLParam(r, "stockID"), 10, 64)
	if err != nil {
		core.BadRequest(w, "invalid stock id")
		return
	}

	var req SetUnitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	entry, err := h.service.SetUnits(r.Context(), stockID, *req.Units)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "stock entry")
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "units must be non-negative")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToEntryResponse(entry))
}
