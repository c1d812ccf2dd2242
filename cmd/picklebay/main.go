package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/picklebay/picklebay/internal/booking"
	"github.com/picklebay/picklebay/internal/db"
	"github.com/picklebay/picklebay/internal/seed"
	"github.com/picklebay/picklebay/internal/service"
	"github.com/picklebay/picklebay/internal/storage"
	"github.com/picklebay/picklebay/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	path := os.Getenv("PICKLEBAY_DB")
	if path == "" {
		path = "picklebay.db"
	}

	database := db.InitDB(path)
	defer database.Close()

	if err := db.RunMigrations(database.DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	dataStore := store.NewDataStore(storage.NewSQLite(database))
	venueService := service.NewVenueService(dataStore)

	if err := seed.Once(dataStore, venueService); err != nil {
		log.Fatal("Failed to seed data:", err)
	}

	slotService := service.NewSlotService(dataStore)
	today := time.Now().Format("2006-01-02")

	for _, venue := range dataStore.Venues() {
		slots := slotService.ListSlots(venue.ID, today)
		available := 0
		for _, slot := range slots {
			if slot.Status == booking.SlotAvailable {
				available++
			}
		}
		slog.Info("venue ready",
			"name", venue.Name,
			"courts", venue.Courts,
			"slots_today", len(slots),
			"available_today", available)
	}

	registrationService := service.NewRegistrationService(dataStore)
	for _, event := range dataStore.Events() {
		roster := registrationService.Roster(event.ID)
		rounds := registrationService.Bracket(event.ID)
		slog.Info("event ready",
			"name", event.Name,
			"registered", len(roster),
			"bracket_rounds", len(rounds))
	}
}
