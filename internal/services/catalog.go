package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/mohana1105/MovieTicketBookingSystem/internal/database"

	"gorm.io/gorm"
)

// CatalogService provides read-only access to movies, shows and seat
// maps. It never mutates the store.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new catalog service bound to the given
// database handle.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ShowDetail is a show joined with its movie's title.
type ShowDetail struct {
	database.Show
	MovieTitle string
}

// SeatStatus is one entry of a show's seat map.
type SeatStatus struct {
	Label  string
	Booked bool
}

// ListMovies retrieves all movies ordered by title.
func (s *CatalogService) ListMovies(ctx context.Context) ([]database.Movie, error) {
	var movies []database.Movie
	err := s.db.WithContext(ctx).
		Order("title ASC").
		Find(&movies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

// ListShows retrieves all shows for a movie ordered by show time.
// An unknown movie id yields an empty slice, not an error.
func (s *CatalogService) ListShows(ctx context.Context, movieID uint) ([]database.Show, error) {
	var shows []database.Show
	err := s.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("show_time ASC").
		Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return shows, nil
}

// GetShow retrieves a single show together with its movie's title.
// Returns ErrNotFound if no such show exists.
func (s *CatalogService) GetShow(ctx context.Context, showID uint) (*ShowDetail, error) {
	var show database.Show
	if err := s.db.WithContext(ctx).First(&show, showID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("show %d: %w", showID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get show: %w", err)
	}
	var movie database.Movie
	if err := s.db.WithContext(ctx).First(&movie, show.MovieID).Error; err != nil {
		return nil, fmt.Errorf("failed to get movie for show %d: %w", showID, err)
	}
	return &ShowDetail{Show: show, MovieTitle: movie.Title}, nil
}

// SeatMap retrieves the availability of every seat of a show, ordered
// by row letter and then numeric seat column (A2 before A10).
func (s *CatalogService) SeatMap(ctx context.Context, showID uint) ([]SeatStatus, error) {
	var seats []database.Seat
	err := s.db.WithContext(ctx).
		Where("show_id = ?", showID).
		Find(&seats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get seat map: %w", err)
	}

	sort.Slice(seats, func(i, j int) bool {
		ri, ni := splitSeatLabel(seats[i].SeatLabel)
		rj, nj := splitSeatLabel(seats[j].SeatLabel)
		if ri != rj {
			return ri < rj
		}
		return ni < nj
	})

	statuses := make([]SeatStatus, 0, len(seats))
	for _, seat := range seats {
		statuses = append(statuses, SeatStatus{Label: seat.SeatLabel, Booked: seat.IsBooked})
	}
	return statuses, nil
}

// splitSeatLabel splits a label like "A7" into its row letter and
// numeric column. A label with a non-numeric tail sorts as column 0.
func splitSeatLabel(label string) (string, int) {
	if label == "" {
		return "", 0
	}
	row, tail := label[:1], label[1:]
	n, err := strconv.Atoi(tail)
	if err != nil {
		return row, 0
	}
	return row, n
}
