// Package database contains database models and operations
package database

import "time"

// User identifies a customer by phone number. The phone is the
// external lookup handle; the name is whatever was supplied the first
// time that phone registered.
type User struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"not null"`
	Phone string `gorm:"not null;uniqueIndex"`

	// Relations
	Bookings []Booking `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Movie is a catalog entry. Created at seed time, read-only afterwards.
type Movie struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"not null;index"`
	Rating       string
	DurationMins int

	// Relations
	Shows []Show `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// Show is a single scheduled screening of a movie. ShowTime is stored
// as an ISO 8601 string so that string ordering is chronological.
// Price is in integer currency units and is flat for every seat of
// the show.
type Show struct {
	ID       uint   `gorm:"primaryKey"`
	MovieID  uint   `gorm:"not null;index"`
	ShowTime string `gorm:"not null"`
	Screen   string `gorm:"not null"`
	Price    int    `gorm:"not null"`

	// Relations
	Movie    Movie
	Seats    []Seat    `gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE"`
	Bookings []Booking `gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE"`
}

// Seat is one of the fixed positions of a show. Exactly one row
// exists per (show, label) pair; only IsBooked ever changes.
type Seat struct {
	ID        uint   `gorm:"primaryKey"`
	ShowID    uint   `gorm:"not null;uniqueIndex:idx_seats_show_label"`
	SeatLabel string `gorm:"not null;uniqueIndex:idx_seats_show_label"`
	IsBooked  bool   `gorm:"not null;default:false"`
}

// Booking records that a seat of a show was reserved by a user.
// SeatLabel is a denormalized copy, not a foreign key to the seat
// row: seats are never deleted independently of their show.
type Booking struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index"`
	ShowID     uint      `gorm:"not null;index"`
	SeatLabel  string    `gorm:"not null"`
	BookedAt   time.Time `gorm:"not null;index"`
	AmountPaid int       `gorm:"not null"`

	// Relations
	User User
	Show Show
}
