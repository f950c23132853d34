package services

import (
	"context"
	"testing"

	"github.com/mohana1105/MovieTicketBookingSystem/internal/database"

	"gorm.io/gorm"
)

// newTestDB opens an in-memory store, migrates it and loads the seed
// catalog. Each test gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:", false)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	if err := database.Seed(db); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return db
}

// firstShow returns the seeded show with the lowest id (price 220).
func firstShow(t *testing.T, db *gorm.DB) database.Show {
	t.Helper()
	var show database.Show
	if err := db.Order("id ASC").First(&show).Error; err != nil {
		t.Fatalf("load first show: %v", err)
	}
	return show
}

// testUser registers a fixture user and returns it.
func testUser(t *testing.T, db *gorm.DB, name, phone string) *database.User {
	t.Helper()
	user, _, err := NewUserService(db).GetOrCreateUser(context.Background(), name, phone)
	if err != nil {
		t.Fatalf("GetOrCreateUser: %v", err)
	}
	return user
}

// seatBooked reports the stored availability of one seat.
func seatBooked(t *testing.T, db *gorm.DB, showID uint, label string) bool {
	t.Helper()
	var seat database.Seat
	if err := db.Where("show_id = ? AND seat_label = ?", showID, label).First(&seat).Error; err != nil {
		t.Fatalf("load seat %s: %v", label, err)
	}
	return seat.IsBooked
}

// countBookings counts booking rows, optionally scoped to one show.
func countBookings(t *testing.T, db *gorm.DB, showID uint) int64 {
	t.Helper()
	var count int64
	q := db.Model(&database.Booking{})
	if showID != 0 {
		q = q.Where("show_id = ?", showID)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	return count
}
