package main

import (
	bookinghandler "staylist/internal/bookings/handler"
	bookingrepo "staylist/internal/bookings/repository"
	bookingservice "staylist/internal/bookings/service"
	bookingvalidator "staylist/internal/bookings/validator"
	listinghandler "staylist/internal/listings/handler"
	listingrepo "staylist/internal/listings/repository"
	listingservice "staylist/internal/listings/service"
	listingvalidator "staylist/internal/listings/validator"
	reviewhandler "staylist/internal/reviews/handler"
	reviewrepo "staylist/internal/reviews/repository"
	reviewservice "staylist/internal/reviews/service"
	reviewvalidator "staylist/internal/reviews/validator"
	"staylist/pkg/app"
	"staylist/pkg/config"
	"staylist/pkg/db"
	"staylist/pkg/events"
)

const ServiceName = "staylist-api"

func main() {
	cfg := config.Load(ServiceName)

	database, err := db.Open(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to connect to database", "error", err)
	}
	if err := db.Migrate(database); err != nil {
		cfg.Log.Fatal("Failed to migrate database schema", "error", err)
	}

	publisher := newPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Warn("Failed to close event publisher", "error", err)
		}
	}()

	listingRepo := listingrepo.NewGormListingRepository(database)
	listingService := listingservice.NewListingService(
		listingRepo,
		listingvalidator.NewListingValidator(cfg.Log),
		cfg.Log,
	)
	bookingService := bookingservice.NewBookingService(
		bookingrepo.NewGormBookingRepository(database),
		listingRepo,
		bookingvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg.Log,
	)
	reviewService := reviewservice.NewReviewService(
		reviewrepo.NewGormReviewRepository(database),
		listingRepo,
		reviewvalidator.NewReviewValidator(cfg.Log),
		cfg.Log,
	)

	cfg.Log.Info("Starting staylist API")
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(database,
		listinghandler.NewListingHandler(listingService, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
		reviewhandler.NewReviewHandler(reviewService, cfg.Log),
	)
	serverApp.Run()
}

func newPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("No Kafka brokers configured, booking events disabled")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka publisher", "error", err)
	}
	cfg.Log.Info("Booking events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	return publisher
}
