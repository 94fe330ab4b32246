package booking

import (
	"encoding/json"
	"net/http"

	"bookings-backend/internal/domains/booking/model/dto"
	"bookings-backend/internal/domains/booking/service"
	"bookings-backend/shared/constant"
	"bookings-backend/shared/failure"
	"bookings-backend/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// ResponseTryAgain is the plain-text body sent when a mutation fails.
const ResponseTryAgain = "An error occurred, please try again."

type Handler struct {
	service service.Booking
}

func New(service service.Booking) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/user/{uid}", handler.GetBookingsByUser)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// GetBookingsByUser lists every booking owned by a uid. A uid with no rows is
// a 404 rather than an empty list.
func (handler *Handler) GetBookingsByUser(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, constant.RequestParamUID)

	bookings, err := handler.service.GetByUser(r.Context(), uid)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by user")

		if failure.IsNotFound(err) {
			response.WithMessage(w, http.StatusNotFound, err.Error())

			return
		}

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID fetches one booking. The body is still a one-element array,
// the shape the original API shipped with.
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, constant.RequestParamID)

	bookings, err := handler.service.GetByID(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking by ID")

		if failure.IsNotFound(err) {
			response.WithMessage(w, http.StatusNotFound, err.Error())

			return
		}

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// CreateBooking inserts a booking and echoes the stored row, including the
// generated id.
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	req := dto.CreateBookingRequest{}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithText(w, http.StatusInternalServerError, ResponseTryAgain)

		return
	}

	booking, err := handler.service.Create(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		response.WithText(w, http.StatusInternalServerError, ResponseTryAgain)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking replaces the seven mutable fields of an existing booking.
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithText(w, http.StatusInternalServerError, ResponseTryAgain)

		return
	}

	booking, err := handler.service.Update(r.Context(), req, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		if failure.IsNotFound(err) {
			response.WithError(w, err)

			return
		}

		response.WithText(w, http.StatusInternalServerError, ResponseTryAgain)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking removes a booking and echoes the deleted row.
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, constant.RequestParamID)

	deleted, err := handler.service.Delete(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		if failure.IsNotFound(err) {
			response.WithError(w, err)

			return
		}

		response.WithText(w, http.StatusInternalServerError, ResponseTryAgain)

		return
	}

	response.WithJSON(w, http.StatusOK, deleted)
}
