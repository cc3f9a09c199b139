// AngelaMos | 2026
// handler.go

package donation

import (
	"encoding/json"
	"errors"
	"net/http"

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
	r.Route("/donations", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Record)
		r.Get("/", h.ListMine)
		r.Get("/eligibility", h.Eligibility)
	})
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req RecordDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	donation, err := h.service.Record(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "donation_date must be a valid date (YYYY-MM-DD)")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToDonationResponse(donation))
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	donations, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToDonationResponseList(donations))
}

func (h *Handler) Eligibility(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	verdict, err := h.service.Eligibility(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, verdict)
}
