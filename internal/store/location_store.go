package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"assetreg/internal/domain"
)

type LocationStore struct {
	db *sql.DB
}

func NewLocationStore(db *sql.DB) *LocationStore {
	return &LocationStore{db: db}
}

func (s *LocationStore) Create(ctx context.Context, name, address, contactPerson, contactPhone string) (*domain.Location, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO locations (name, address, contact_person, contact_phone)
		VALUES (?, ?, ?, ?)
	`, name, address, contactPerson, contactPhone)
	if err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *LocationStore) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	loc := &domain.Location{}
	err := s.db.QueryRowContext(ctx, `
		SELECT location_id, name, address, contact_person, contact_phone
		FROM locations WHERE location_id = ?
	`, id).Scan(&loc.ID, &loc.Name, &loc.Address, &loc.ContactPerson, &loc.ContactPhone)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return loc, nil
}

// List returns all locations in insertion order (location_id ascending).
func (s *LocationStore) List(ctx context.Context) ([]*domain.Location, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT location_id, name, address, contact_person, contact_phone
		FROM locations ORDER BY location_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var locations []*domain.Location
	for rows.Next() {
		loc := &domain.Location{}
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.ContactPerson, &loc.ContactPhone); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}

	return locations, nil
}

// ListWithCounts returns every location with its asset count, ordered by
// location name. Locations with no assets appear with a zero count.
func (s *LocationStore) ListWithCounts(ctx context.Context) ([]*domain.ReportLocation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT l.location_id, l.name, COUNT(a.asset_id)
		FROM locations l
		LEFT JOIN assets a ON l.location_id = a.location_id
		GROUP BY l.location_id
		ORDER BY l.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list location counts: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var locations []*domain.ReportLocation
	for rows.Next() {
		loc := &domain.ReportLocation{}
		if err := rows.Scan(&loc.LocationID, &loc.Name, &loc.AssetCount); err != nil {
			return nil, fmt.Errorf("failed to scan location count: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location counts: %w", err)
	}

	return locations, nil
}
