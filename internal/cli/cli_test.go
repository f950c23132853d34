package cli

import (
	"strings"
	"testing"

	"github.com/mohana1105/MovieTicketBookingSystem/internal/database"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:", false)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	if err := database.Seed(db); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return db
}

// run feeds scripted input lines through the menu loop and returns
// everything printed.
func run(t *testing.T, db *gorm.DB, lines ...string) string {
	t.Helper()
	var out strings.Builder
	app := New(db, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	app.Run()
	return out.String()
}

func TestRunListsMoviesAndExits(t *testing.T) {
	db := newTestDB(t)

	out := run(t, db, "1", "", "0")
	for _, title := range []string{"Laugh Out Loud", "Starlight Odyssey", "The Last Mission"} {
		if !strings.Contains(out, title) {
			t.Errorf("output missing movie %q", title)
		}
	}
	if !strings.Contains(out, "Bye!") {
		t.Error("output missing exit message")
	}
}

func TestRunRejectsNonNumericID(t *testing.T) {
	db := newTestDB(t)

	out := run(t, db, "3", "abc", "", "0")
	if !strings.Contains(out, "Invalid number.") {
		t.Error("non-numeric show id not rejected locally")
	}
}

func TestRunBookingFlow(t *testing.T) {
	db := newTestDB(t)

	out := run(t, db,
		"4",        // Book Seats
		"1",        // show id
		"Alice",    // name
		"555-0001", // phone
		"A1,A2",    // seats
		"",         // pause
		"5",        // View My Bookings
		"555-0001",
		"",
		"0",
	)
	if !strings.Contains(out, "Booking confirmed!") {
		t.Fatalf("booking not confirmed; output:\n%s", out)
	}
	if !strings.Contains(out, "Amount: ₹440") {
		t.Error("total amount for two seats at 220 not shown as 440")
	}
	if !strings.Contains(out, "Seat A1") || !strings.Contains(out, "Seat A2") {
		t.Error("booking list missing reserved seats")
	}
}

func TestRunBookingRetryAfterConflict(t *testing.T) {
	db := newTestDB(t)

	// Book A1, then try A1 again for another caller: the error is
	// printed and the seat prompt repeats until a free seat is given.
	out := run(t, db,
		"4", "1", "Alice", "555-0001", "A1", "",
		"4", "1", "Bob", "555-0002", "A1", "A2", "",
		"0",
	)
	if !strings.Contains(out, "already booked") {
		t.Error("conflict error not surfaced")
	}
	if !strings.Contains(out, "Try again.") {
		t.Error("retry prompt missing after failed booking")
	}
	if strings.Count(out, "Booking confirmed!") != 2 {
		t.Error("second caller could not book a free seat after retry")
	}
}

func TestRunSeatMapMarksBookedSeats(t *testing.T) {
	db := newTestDB(t)

	out := run(t, db,
		"4", "1", "Alice", "555-0001", "B7", "",
		"3", "1", "",
		"0",
	)
	if !strings.Contains(out, "B7(X)") {
		t.Error("seat map does not mark B7 as booked")
	}
	if !strings.Contains(out, "A1( )") {
		t.Error("seat map does not show A1 as free")
	}
}

func TestRunCancelFlow(t *testing.T) {
	db := newTestDB(t)

	out := run(t, db,
		"4", "1", "Alice", "555-0001", "A1", "",
		"6", "1", "", // first booking id is 1
		"6", "999", "", // already gone
		"0",
	)
	if !strings.Contains(out, "Booking canceled and seat released.") {
		t.Error("cancel of existing booking not confirmed")
	}
	if !strings.Contains(out, "Booking not found.") {
		t.Error("cancel of missing booking not reported")
	}
}
