// AngelaMos | 2026
// handler.go

package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/redconnect-dev/redconnect/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the portal-wide aggregates shown on the
// landing page.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/stats", h.Stats)
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/dashboard", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.Dashboard)
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.Stats(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToStatsResponse(counts))
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	counts, recent, err := h.service.Dashboard(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, DashboardResponse{
		Stats:          ToStatsResponse(counts),
		RecentRequests: ToRecentRequestResponses(recent),
	})
}
