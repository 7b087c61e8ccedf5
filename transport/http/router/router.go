package router

import (
	"trek/internal/handlers/admin"
	"trek/internal/handlers/auth"
	"trek/internal/handlers/booking"
	"trek/internal/handlers/customer"
	"trek/internal/handlers/feedback"
	"trek/internal/handlers/guide"
	"trek/internal/handlers/tour"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Tour     tour.Handler
	Guide    guide.Handler
	Booking  booking.Handler
	Feedback feedback.Handler
	Customer customer.Handler
	Admin    admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Tour.Router(routerGroup)
		r.DomainHandlers.Guide.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Feedback.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
