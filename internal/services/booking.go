package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mohana1105/MovieTicketBookingSystem/internal/database"

	"gorm.io/gorm"
)

// BookingService handles seat reservations and cancellations. Both
// paths run inside a single transaction so seat state and booking
// rows can never diverge, even on a mid-operation failure.
type BookingService struct {
	db *gorm.DB
}

// NewBookingService creates a new booking service bound to the given
// database handle.
func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// BookingSummary is one row of a user's booking history.
type BookingSummary struct {
	ID         uint
	MovieTitle string
	ShowTime   string
	Screen     string
	SeatLabel  string
	AmountPaid int
	BookedAt   time.Time
}

// Reserve books the given seats of a show for a user as one atomic
// unit and returns the new booking ids in the order the labels were
// supplied. Labels are trimmed, upper-cased and empty entries
// dropped; an empty result fails with ErrInvalidRequest. A missing
// show or seat fails with ErrNotFound, a taken seat with ErrConflict,
// and any failure rolls back the whole batch: no seat from this call
// stays booked and no booking rows from this call survive. A label
// repeated within one call conflicts with its own first occurrence.
// All bookings of one call share the same BookedAt instant and carry
// the show's price as AmountPaid.
func (s *BookingService) Reserve(ctx context.Context, userID, showID uint, seatLabels []string) ([]uint, error) {
	labels := make([]string, 0, len(seatLabels))
	for _, label := range seatLabels {
		label = strings.ToUpper(strings.TrimSpace(label))
		if label != "" {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no seat labels provided: %w", ErrInvalidRequest)
	}

	var bookingIDs []uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var show database.Show
		if err := tx.First(&show, showID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("show %d: %w", showID, ErrNotFound)
			}
			return fmt.Errorf("failed to load show: %w", err)
		}

		bookedAt := time.Now()
		bookingIDs = make([]uint, 0, len(labels))

		for _, label := range labels {
			var seat database.Seat
			err := tx.Where("show_id = ? AND seat_label = ?", showID, label).First(&seat).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("seat %s: %w", label, ErrNotFound)
				}
				return fmt.Errorf("failed to load seat %s: %w", label, err)
			}
			if seat.IsBooked {
				return fmt.Errorf("seat %s: %w", label, ErrConflict)
			}

			if err := tx.Model(&database.Seat{}).Where("id = ?", seat.ID).
				Update("is_booked", true).Error; err != nil {
				return fmt.Errorf("failed to mark seat %s booked: %w", label, err)
			}

			booking := database.Booking{
				UserID:     userID,
				ShowID:     showID,
				SeatLabel:  label,
				BookedAt:   bookedAt,
				AmountPaid: show.Price,
			}
			if err := tx.Create(&booking).Error; err != nil {
				return fmt.Errorf("failed to create booking for seat %s: %w", label, err)
			}
			bookingIDs = append(bookingIDs, booking.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return bookingIDs, nil
}

// BookingsForPhone retrieves the booking history for a phone number,
// most recent first. An unknown phone yields an empty slice, not an
// error.
func (s *BookingService) BookingsForPhone(ctx context.Context, phone string) ([]BookingSummary, error) {
	var summaries []BookingSummary
	err := s.db.WithContext(ctx).
		Model(&database.Booking{}).
		Select("bookings.id, movies.title AS movie_title, shows.show_time, shows.screen, bookings.seat_label, bookings.amount_paid, bookings.booked_at").
		Joins("JOIN shows ON shows.id = bookings.show_id").
		Joins("JOIN movies ON movies.id = shows.movie_id").
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("users.phone = ?", strings.TrimSpace(phone)).
		Order("bookings.booked_at DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	return summaries, nil
}

// Cancel deletes a booking and releases its seat in one transaction.
// Returns false if no such booking exists; that is a normal outcome,
// not an error.
func (s *BookingService) Cancel(ctx context.Context, bookingID uint) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking database.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load booking: %w", err)
		}

		if err := tx.Delete(&database.Booking{}, booking.ID).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
		if err := tx.Model(&database.Seat{}).
			Where("show_id = ? AND seat_label = ?", booking.ShowID, booking.SeatLabel).
			Update("is_booked", false).Error; err != nil {
			return fmt.Errorf("failed to release seat %s: %w", booking.SeatLabel, err)
		}

		found = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
