package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	bookingMocks "bookings-backend/internal/domains/booking/mocks"
	"bookings-backend/internal/domains/booking/model"
	"bookings-backend/internal/domains/booking/model/dto"
	"bookings-backend/internal/domains/booking/service"
	"bookings-backend/shared/failure"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func sampleBooking(id int64) model.Booking {
	return model.Booking{
		ID:    id,
		Room:  strPtr("101"),
		Pax:   int64Ptr(2),
		Date:  strPtr("2024-01-01"),
		Time:  strPtr("14:00:00"),
		Name:  strPtr("Ann"),
		Phone: strPtr("555"),
		Email: strPtr("a@x.com"),
		UID:   strPtr("u1"),
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation echoes the stored row",
			req: dto.CreateBookingRequest{
				Room: strPtr("101"),
				Pax:  int64Ptr(2),
				UID:  strPtr("u1"),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(sampleBooking(1), nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req:  dto.CreateBookingRequest{Room: strPtr("101")},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), res.ID)
				assert.Equal(t, "101", *res.Room)
				assert.Equal(t, "u1", *res.UID)
			}
		})
	}
}

func TestBookingService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantLen   int
	}{
		{
			name: "found booking comes back as one-element list",
			id:   "1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), "1").
					Return([]model.Booking{sampleBooking(1)}, nil)
			},
			wantLen: 1,
		},
		{
			name: "zero rows is a not found failure",
			id:   "999999",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), "999999").
					Return([]model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error is a store failure",
			id:   "abc",
			setupMock: func() {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), "abc").
					Return(nil, errors.New("invalid input syntax for type integer"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetByID(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantCode == http.StatusNotFound {
					assert.Equal(t, service.MessageBookingNotExist, err.Error())
				}
			} else {
				assert.NoError(t, err)
				assert.Len(t, res, tt.wantLen)
			}
		})
	}
}

func TestBookingService_GetByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo)

	t.Run("returns every booking owned by the uid", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUID(gomock.Any(), "u1").
			Return([]model.Booking{sampleBooking(1), sampleBooking(2)}, nil)

		res, err := svc.GetByUser(context.Background(), "u1")

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, int64(1), res[0].ID)
		assert.Equal(t, int64(2), res[1].ID)
	})

	t.Run("uid with no bookings is a not found failure", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUID(gomock.Any(), "nobody").
			Return([]model.Booking{}, nil)

		_, err := svc.GetByUser(context.Background(), "nobody")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, service.MessageNoBookingsForUser, err.Error())
	})

	t.Run("repository error is a store failure", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByUID(gomock.Any(), "u1").
			Return(nil, errors.New("connection refused"))

		_, err := svc.GetByUser(context.Background(), "u1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo)

	req := dto.UpdateBookingRequest{
		Room: strPtr("102"),
		Pax:  int64Ptr(3),
	}

	t.Run("missing booking skips the mutation", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), "999999").
			Return(false, nil)

		_, err := svc.Update(context.Background(), req, "999999")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, service.MessageBookingNotFound, err.Error())
	})

	t.Run("existing booking gets all seven fields replaced", func(t *testing.T) {
		updated := sampleBooking(1)
		updated.Room = strPtr("102")
		updated.Pax = int64Ptr(3)

		mockRepo.EXPECT().
			Exist(gomock.Any(), "1").
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), "1").
			Return(updated, nil)

		res, err := svc.Update(context.Background(), req, "1")

		assert.NoError(t, err)
		assert.Equal(t, "102", *res.Room)
		assert.Equal(t, int64(3), *res.Pax)
		assert.Equal(t, "u1", *res.UID)
	})

	t.Run("existence check error is a store failure", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), "1").
			Return(false, errors.New("connection refused"))

		_, err := svc.Update(context.Background(), req, "1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("mutation error after the check is a store failure", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), "1").
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), "1").
			Return(model.Booking{}, errors.New("database error"))

		_, err := svc.Update(context.Background(), req, "1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	svc := service.New(mockRepo)

	t.Run("missing booking skips the mutation", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), "999999").
			Return(false, nil)

		_, err := svc.Delete(context.Background(), "999999")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, service.MessageBookingNotFound, err.Error())
	})

	t.Run("deletion echoes the removed row", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), "1").
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), "1").
			Return(sampleBooking(1), nil)

		res, err := svc.Delete(context.Background(), "1")

		assert.NoError(t, err)
		assert.Equal(t, service.MessageBookingDeleted, res.Message)
		assert.Equal(t, int64(1), res.Booking.ID)
		assert.Equal(t, "101", *res.Booking.Room)
	})

	t.Run("mutation error after the check is a store failure", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), "1").
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), "1").
			Return(model.Booking{}, errors.New("database error"))

		_, err := svc.Delete(context.Background(), "1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
