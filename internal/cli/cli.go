// Package cli contains the interactive menu loop
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mohana1105/MovieTicketBookingSystem/internal/services"

	"gorm.io/gorm"
)

const menu = `
================= Movie Ticket Booking — Main Menu =================
1) List Movies
2) List Shows for a Movie
3) View Seat Map for a Show
4) Book Seats
5) View My Bookings
6) Cancel a Booking
0) Exit
-------------------------------------------------------------------
Choose: `

// App is the interactive menu surface. It owns the service instances
// and consumes only their API; it never queries the store directly.
type App struct {
	catalogService *services.CatalogService
	userService    *services.UserService
	bookingService *services.BookingService
	in             *bufio.Scanner
	out            io.Writer
}

// New creates a new app reading from in and writing to out.
func New(db *gorm.DB, in io.Reader, out io.Writer) *App {
	return &App{
		catalogService: services.NewCatalogService(db),
		userService:    services.NewUserService(db),
		bookingService: services.NewBookingService(db),
		in:             bufio.NewScanner(in),
		out:            out,
	}
}

// Run reads menu choices until the user exits or input ends.
func (a *App) Run() {
	for {
		fmt.Fprint(a.out, menu)
		line, ok := a.readLine()
		if !ok {
			fmt.Fprintln(a.out, "\nGoodbye!")
			return
		}

		switch strings.TrimSpace(line) {
		case "1":
			a.handleListMovies()
			a.pause()
		case "2":
			a.handleListShows()
			a.pause()
		case "3":
			a.handleSeatMap()
			a.pause()
		case "4":
			a.handleBookSeats()
			a.pause()
		case "5":
			a.handleMyBookings()
			a.pause()
		case "6":
			a.handleCancelBooking()
			a.pause()
		case "0":
			fmt.Fprintln(a.out, "Bye! Welcome again!")
			return
		default:
			fmt.Fprintln(a.out, "Invalid option. Try again.")
		}
	}
}

// readLine reads one input line; ok is false when input is exhausted.
func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

// prompt prints a label and reads the reply, trimmed.
func (a *App) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	line, ok := a.readLine()
	return strings.TrimSpace(line), ok
}
