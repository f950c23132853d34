package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Seat layout shared by every show: rows A and B, 10 seats each.
var seatRows = []string{"A", "B"}

const seatsPerRow = 10

// seedShow pairs a show with the index of its movie in the seed
// movie list (seed movies may not assume fixed ids).
type seedShow struct {
	movieIndex int
	showTime   string
	screen     string
	price      int
}

var seedMovies = []Movie{
	{Title: "Starlight Odyssey", Rating: "U/A", DurationMins: 128},
	{Title: "The Last Mission", Rating: "U/A", DurationMins: 142},
	{Title: "Laugh Out Loud", Rating: "U", DurationMins: 110},
}

var seedShows = []seedShow{
	{0, "2025-08-29T18:00:00", "Screen 1", 220},
	{0, "2025-08-29T21:15:00", "Screen 1", 250},
	{1, "2025-08-29T19:30:00", "Screen 2", 240},
	{2, "2025-08-29T17:00:00", "Screen 3", 200},
}

// Seed populates the catalog with the fixed movies, shows and seat
// layouts if the movie table is empty. Each phase (movies, shows,
// seats) runs in its own transaction so a failure never leaves shows
// without matching seats. Re-running against a populated database is
// a no-op.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Movie{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count movies: %w", err)
	}
	if count > 0 {
		log.Println("Database already seeded")
		return nil
	}

	log.Println("Seeding database with movies, shows and seats...")

	movies := make([]Movie, len(seedMovies))
	copy(movies, seedMovies)
	if err := db.Transaction(func(tx *gorm.DB) error {
		for i := range movies {
			if err := tx.Create(&movies[i]).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}

	shows := make([]Show, len(seedShows))
	if err := db.Transaction(func(tx *gorm.DB) error {
		for i, s := range seedShows {
			shows[i] = Show{
				MovieID:  movies[s.movieIndex].ID,
				ShowTime: s.showTime,
				Screen:   s.screen,
				Price:    s.price,
			}
			if err := tx.Create(&shows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to seed shows: %w", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		for _, show := range shows {
			for _, row := range seatRows {
				for n := 1; n <= seatsPerRow; n++ {
					seat := Seat{
						ShowID:    show.ID,
						SeatLabel: fmt.Sprintf("%s%d", row, n),
					}
					if err := tx.Create(&seat).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to seed seats: %w", err)
	}

	log.Println("Database seeded successfully")
	return nil
}
