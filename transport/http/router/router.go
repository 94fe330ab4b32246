package router

import (
	"bookings-backend/internal/handlers/booking"
	"bookings-backend/internal/handlers/root"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Root    root.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Root.Router(router)
	r.DomainHandlers.Booking.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
