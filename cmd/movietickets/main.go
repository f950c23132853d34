// Package main is the entry point for the movie ticket booking CLI
package main

import (
	"log"
	"os"

	"github.com/mohana1105/MovieTicketBookingSystem/internal/cli"
	"github.com/mohana1105/MovieTicketBookingSystem/internal/config"
	"github.com/mohana1105/MovieTicketBookingSystem/internal/database"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.Open(cfg.DBPath, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	// Seed catalog data if the store is empty
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	app := cli.New(db, os.Stdin, os.Stdout)
	app.Run()
}
