package model

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID    = "id"
	FieldRoom  = "room"
	FieldPax   = "pax"
	FieldDate  = "date"
	FieldTime  = "time"
	FieldName  = "name"
	FieldPhone = "phone"
	FieldEmail = "email"
	FieldUID   = "uid"
)

// Booking mirrors one row of the bookings table. Every client-supplied column
// is a pointer so absent fields travel to the database as NULL, and date/time
// are carried as text so stored values echo back unchanged.
type Booking struct {
	ID    int64   `db:"id"`
	Room  *string `db:"room"`
	Pax   *int64  `db:"pax"`
	Date  *string `db:"date"`
	Time  *string `db:"time"`
	Name  *string `db:"name"`
	Phone *string `db:"phone"`
	Email *string `db:"email"`
	UID   *string `db:"uid"`
}
