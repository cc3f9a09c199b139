// AngelaMos | 2026
// handler.go

package notification

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/redconnect-dev/redconnect/internal/core"
	"github.com/redconnect-dev/redconnect/internal/middleware"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/notifications", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListMine)
	})
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	notifications, err := h.repo.ListByUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToResponseList(notifications))
}

type Response struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	AdminName  string    `json:"admin_name"`
	AdminPhone string    `json:"admin_phone"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToResponse(n *Notification) Response {
	return Response{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		AdminName:  n.AdminName,
		AdminPhone: n.AdminPhone,
		CreatedAt:  n.CreatedAt,
	}
}

func ToResponseList(notifications []Notification) []Response {
	responses := make([]Response, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, ToResponse(&n))
	}
	return responses
}
