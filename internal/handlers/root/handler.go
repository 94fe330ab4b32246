package root

import (
	"net/http"

	"bookings-backend/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/", h.Welcome)
}

func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	response.WithText(w, http.StatusOK, "Welcome to the API")
}
