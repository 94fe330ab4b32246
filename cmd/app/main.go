package main

import (
	"bookings-backend/config"
	"bookings-backend/infras/postgres"
	bookingRepository "bookings-backend/internal/domains/booking/repository"
	bookingService "bookings-backend/internal/domains/booking/service"
	bookingHandler "bookings-backend/internal/handlers/booking"
	rootHandler "bookings-backend/internal/handlers/root"
	"bookings-backend/shared/logger"
	"bookings-backend/transport/http"
	"bookings-backend/transport/http/router"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)

	repo := bookingRepository.New(db)
	svc := bookingService.New(repo)

	handlers := router.DomainHandlers{
		Root:    rootHandler.New(),
		Booking: bookingHandler.New(svc),
	}

	http.New(cfg, router.New(handlers)).Serve()
}
