package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bookings-backend/internal/domains/booking/model/dto"
	"bookings-backend/internal/domains/booking/repository"
	"bookings-backend/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	MessageNoBookingsForUser = "No bookings found for this user"
	MessageBookingNotExist   = "Booking does not exist"
	MessageBookingNotFound   = "Booking not found"
	MessageBookingDeleted    = "Booking deleted successfully"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetByID(ctx context.Context, id string) ([]dto.BookingResponse, error)
	GetByUser(ctx context.Context, uid string) ([]dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) (dto.DeleteBookingResponse, error)
}

type serviceImpl struct {
	repo repository.Booking
}

func New(repo repository.Booking) Booking {
	return &serviceImpl{repo: repo}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	booking, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

// GetByID returns the matching rows as a list even though id is the primary
// key; clients of the original API expect a one-element array here.
func (s *serviceImpl) GetByID(ctx context.Context, id string) ([]dto.BookingResponse, error) {
	bookings, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if len(bookings) == 0 {
		return nil, failure.NotFound(MessageBookingNotExist) // nolint:wrapcheck
	}

	return dto.FromModels(bookings), nil
}

func (s *serviceImpl) GetByUser(ctx context.Context, uid string) ([]dto.BookingResponse, error) {
	bookings, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by user")

		return nil, fmt.Errorf("failed to get bookings by user: %w", err)
	}

	if len(bookings) == 0 {
		return nil, failure.NotFound(MessageNoBookingsForUser) // nolint:wrapcheck
	}

	return dto.FromModels(bookings), nil
}

// Update runs an existence check before the mutation. The two statements are
// not atomic: a concurrent delete can win the race between them, in which case
// the update affects zero rows. Matches the original service's behavior.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(MessageBookingNotFound) // nolint:wrapcheck
	}

	updated, err := s.repo.Update(ctx, req.ToModel(), id)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	res.FromModel(updated)

	return res, nil
}

// Delete shares Update's check-then-mutate shape and its race.
func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.DeleteBookingResponse, err error) {
	exist, err := s.repo.Exist(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(MessageBookingNotFound) // nolint:wrapcheck
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return res, fmt.Errorf("failed to delete booking: %w", err)
	}

	res.Message = MessageBookingDeleted
	res.Booking.FromModel(deleted)

	return res, nil
}
