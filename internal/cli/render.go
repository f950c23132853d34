// Package cli contains output rendering helpers
package cli

import (
	"context"
	"fmt"
	"strings"
)

// printHeading prints a boxed section title
func (a *App) printHeading(title string) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, strings.Repeat("=", 70))
	fmt.Fprintln(a.out, title)
	fmt.Fprintln(a.out, strings.Repeat("=", 70))
}

// pause waits for Enter before returning to the menu
func (a *App) pause() {
	fmt.Fprint(a.out, "\nPress Enter to continue...")
	a.readLine()
}

// showSeatMap prints the seat grid of a show, one line per row,
// booked seats marked (X) and free seats ( ).
func (a *App) showSeatMap(showID uint) {
	ctx := context.Background()

	show, err := a.catalogService.GetShow(ctx, showID)
	if err != nil {
		fmt.Fprintln(a.out, "Show not found.")
		return
	}
	seats, err := a.catalogService.SeatMap(ctx, showID)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}

	a.printHeading(fmt.Sprintf("Seat Map — %s @ %s • %s", show.MovieTitle, show.ShowTime, show.Screen))

	currentRow := ""
	var line []string
	for _, seat := range seats {
		row := seat.Label[:1]
		if currentRow == "" {
			currentRow = row
		}
		if row != currentRow {
			fmt.Fprintln(a.out, strings.Join(line, " "))
			line = line[:0]
			currentRow = row
		}
		mark := "( )"
		if seat.Booked {
			mark = "(X)"
		}
		line = append(line, seat.Label+mark)
	}
	if len(line) > 0 {
		fmt.Fprintln(a.out, strings.Join(line, " "))
	}
}
