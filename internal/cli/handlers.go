// Package cli contains menu action handlers
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// handleListMovies prints the movie catalog
func (a *App) handleListMovies() {
	ctx := context.Background()

	movies, err := a.catalogService.ListMovies(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	a.printHeading("Movies")
	if len(movies) == 0 {
		fmt.Fprintln(a.out, "No movies found.")
		return
	}
	for _, m := range movies {
		fmt.Fprintf(a.out, "[%d] %s  (%s, %d mins)\n", m.ID, m.Title, m.Rating, m.DurationMins)
	}
}

// handleListShows prints the shows of a movie chosen by id
func (a *App) handleListShows() {
	a.handleListMovies()

	movieID, ok := a.promptID("\nEnter Movie ID to view shows: ")
	if !ok {
		return
	}

	shows, err := a.catalogService.ListShows(context.Background(), movieID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	a.printHeading("Shows")
	if len(shows) == 0 {
		fmt.Fprintln(a.out, "No shows for this movie.")
		return
	}
	for _, s := range shows {
		fmt.Fprintf(a.out, "[Show %d] %s • %s • ₹%d\n", s.ID, s.ShowTime, s.Screen, s.Price)
	}
}

// handleSeatMap prints the seat grid of a show chosen by id
func (a *App) handleSeatMap() {
	showID, ok := a.promptID("Enter Show ID to view seats: ")
	if !ok {
		return
	}
	a.showSeatMap(showID)
}

// handleBookSeats runs the booking flow: show, identity, seats
func (a *App) handleBookSeats() {
	ctx := context.Background()

	showID, ok := a.promptID("Enter Show ID to book: ")
	if !ok {
		return
	}
	show, err := a.catalogService.GetShow(ctx, showID)
	if err != nil {
		fmt.Fprintln(a.out, "Show not found.")
		return
	}

	name, ok := a.prompt("Your Name: ")
	if !ok {
		return
	}
	phone, ok := a.prompt("Your Phone (unique): ")
	if !ok {
		return
	}
	user, _, err := a.userService.GetOrCreateUser(ctx, name, phone)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Enter seats separated by commas (e.g., A1,A2,B5). Type 'map' to view seats.")
	for {
		input, ok := a.prompt("Seats: ")
		if !ok {
			return
		}
		if strings.EqualFold(input, "map") {
			a.showSeatMap(showID)
			continue
		}

		labels := splitSeatList(input)
		if len(labels) == 0 {
			fmt.Fprintln(a.out, "Please enter at least one seat.")
			continue
		}

		ids, err := a.bookingService.Reserve(ctx, user.ID, showID, labels)
		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			fmt.Fprintln(a.out, "Try again.")
			continue
		}

		total := len(ids) * show.Price
		fmt.Fprintln(a.out, "\nBooking confirmed!")
		fmt.Fprintf(a.out, "Movie: %s\n", show.MovieTitle)
		fmt.Fprintf(a.out, "Show:  %s • %s\n", show.ShowTime, show.Screen)
		fmt.Fprintf(a.out, "Seats: %s\n", strings.Join(labels, ", "))
		fmt.Fprintf(a.out, "Amount: ₹%d\n", total)
		fmt.Fprintf(a.out, "Booking IDs: %s\n", joinIDs(ids))
		return
	}
}

// handleMyBookings lists bookings for a phone number
func (a *App) handleMyBookings() {
	phone, ok := a.prompt("Enter your phone: ")
	if !ok {
		return
	}

	bookings, err := a.bookingService.BookingsForPhone(context.Background(), phone)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	a.printHeading("Your Bookings")
	if len(bookings) == 0 {
		fmt.Fprintln(a.out, "No bookings found.")
		return
	}
	for _, b := range bookings {
		fmt.Fprintf(a.out, "[#%d] %s • %s • %s • Seat %s • ₹%d • at %s\n",
			b.ID, b.MovieTitle, b.ShowTime, b.Screen, b.SeatLabel, b.AmountPaid,
			b.BookedAt.Format("2006-01-02T15:04:05"))
	}
}

// handleCancelBooking cancels a booking by id
func (a *App) handleCancelBooking() {
	bookingID, ok := a.promptID("Enter Booking ID to cancel: ")
	if !ok {
		return
	}

	released, err := a.bookingService.Cancel(context.Background(), bookingID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	if released {
		fmt.Fprintln(a.out, "Booking canceled and seat released.")
	} else {
		fmt.Fprintln(a.out, "Booking not found.")
	}
}

// promptID prompts for a numeric id; non-numeric input is rejected
// here without reaching the services.
func (a *App) promptID(label string) (uint, bool) {
	input, ok := a.prompt(label)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(input, 10, 32)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid number.")
		return 0, false
	}
	return uint(id), true
}

// splitSeatList splits comma-separated seat labels, dropping empties.
func splitSeatList(input string) []string {
	parts := strings.Split(input, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			labels = append(labels, strings.ToUpper(p))
		}
	}
	return labels
}

// joinIDs formats booking ids as a comma-separated list.
func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ", ")
}
