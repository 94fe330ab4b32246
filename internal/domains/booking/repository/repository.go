package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bookings-backend/internal/domains/booking/model"
	"bookings-backend/shared/logger"

	"github.com/jmoiron/sqlx"
)

// selectColumns casts date and time to text so rows come back exactly as the
// database renders them, with no driver-side time parsing in between.
const selectColumns = "id, room, pax, date::text AS date, time::text AS time, name, phone, email, uid"

// Booking issues parameterized statements against the bookings table. The id
// parameter stays a string on purpose: the database coerces it to the primary
// key type, and a non-numeric value surfaces as a query error.
type Booking interface {
	Insert(ctx context.Context, booking model.Booking) (model.Booking, error)
	GetByID(ctx context.Context, id string) ([]model.Booking, error)
	GetByUID(ctx context.Context, uid string) ([]model.Booking, error)
	Exist(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, booking model.Booking, id string) (model.Booking, error)
	Delete(ctx context.Context, id string) (model.Booking, error)
}

type repositoryImpl struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Booking {
	return &repositoryImpl{db: db}
}

func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (model.Booking, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (room, pax, date, time, name, phone, email, uid) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING %s",
		model.TableName, selectColumns,
	)

	var inserted model.Booking

	err := repo.db.GetContext(ctx, &inserted, query,
		booking.Room, booking.Pax, booking.Date, booking.Time,
		booking.Name, booking.Phone, booking.Email, booking.UID,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return inserted, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return inserted, nil
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) ([]model.Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", selectColumns, model.TableName, model.FieldID)

	bookings := []model.Booking{}

	if err := repo.db.SelectContext(ctx, &bookings, query, id); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}

func (repo *repositoryImpl) GetByUID(ctx context.Context, uid string) ([]model.Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", selectColumns, model.TableName, model.FieldUID)

	bookings := []model.Booking{}

	if err := repo.db.SelectContext(ctx, &bookings, query, uid); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", model.TableName, model.FieldID)

	exist := false

	if err := repo.db.GetContext(ctx, &exist, query, id); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}

	return exist, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, booking model.Booking, id string) (model.Booking, error) {
	query := fmt.Sprintf(
		"UPDATE %s SET room = $1, pax = $2, date = $3, time = $4, name = $5, phone = $6, email = $7 WHERE %s = $8 RETURNING %s",
		model.TableName, model.FieldID, selectColumns,
	)

	var updated model.Booking

	err := repo.db.GetContext(ctx, &updated, query,
		booking.Room, booking.Pax, booking.Date, booking.Time,
		booking.Name, booking.Phone, booking.Email, id,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return updated, fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	return updated, nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id string) (model.Booking, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 RETURNING %s", model.TableName, model.FieldID, selectColumns)

	var deleted model.Booking

	if err := repo.db.GetContext(ctx, &deleted, query, id); err != nil {
		logger.ErrorWithStack(err)

		return deleted, fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	return deleted, nil
}
