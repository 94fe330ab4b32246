package dto

import (
	"bookings-backend/internal/domains/booking/model"
)

// CreateBookingRequest carries all eight client-writable columns. No
// validation is applied: missing fields stay nil and reach the insert as
// NULL, leaving enforcement to the database's own column constraints.
type CreateBookingRequest struct {
	Room  *string `json:"room"`
	Pax   *int64  `json:"pax"`
	Date  *string `json:"date"`
	Time  *string `json:"time"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	UID   *string `json:"uid"`
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		Room:  c.Room,
		Pax:   c.Pax,
		Date:  c.Date,
		Time:  c.Time,
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
		UID:   c.UID,
	}
}

// UpdateBookingRequest replaces the seven mutable columns. uid is deliberately
// absent: the update route never alters ownership, even when supplied.
type UpdateBookingRequest struct {
	Room  *string `json:"room"`
	Pax   *int64  `json:"pax"`
	Date  *string `json:"date"`
	Time  *string `json:"time"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

func (u *UpdateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		Room:  u.Room,
		Pax:   u.Pax,
		Date:  u.Date,
		Time:  u.Time,
		Name:  u.Name,
		Phone: u.Phone,
		Email: u.Email,
	}
}

type BookingResponse struct {
	ID    int64   `json:"id"`
	Room  *string `json:"room"`
	Pax   *int64  `json:"pax"`
	Date  *string `json:"date"`
	Time  *string `json:"time"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	UID   *string `json:"uid"`
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.Room = mod.Room
	r.Pax = mod.Pax
	r.Date = mod.Date
	r.Time = mod.Time
	r.Name = mod.Name
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.UID = mod.UID
}

func FromModels(models []model.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

// DeleteBookingResponse echoes the row as it stood before deletion.
type DeleteBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}
