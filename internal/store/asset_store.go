package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"assetreg/internal/domain"
)

type AssetStore struct {
	db *sql.DB
}

func NewAssetStore(db *sql.DB) *AssetStore {
	return &AssetStore{db: db}
}

func (s *AssetStore) Create(ctx context.Context, a domain.NewAsset) (*domain.Asset, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO assets (
			location_id, name, description, purchase_date, purchase_price,
			serial_number, category, condition, last_maintenance_date
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.LocationID, a.Name, a.Description, a.PurchaseDate, a.PurchasePrice,
		a.SerialNumber, a.Category, a.Condition, a.LastMaintenanceDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *AssetStore) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	asset := &domain.Asset{}
	err := s.db.QueryRowContext(ctx, `
		SELECT asset_id, location_id, name, description, purchase_date, purchase_price,
		       serial_number, category, condition, last_maintenance_date
		FROM assets WHERE asset_id = ?
	`, id).Scan(&asset.ID, &asset.LocationID, &asset.Name, &asset.Description,
		&asset.PurchaseDate, &asset.PurchasePrice, &asset.SerialNumber,
		&asset.Category, &asset.Condition, &asset.LastMaintenanceDate)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return asset, nil
}

// ListViews returns all assets joined to their location name, ordered by
// location name then asset name (both byte order).
func (s *AssetStore) ListViews(ctx context.Context) ([]*domain.AssetView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.asset_id, l.name, a.name, a.description, a.category, a.condition
		FROM assets a
		JOIN locations l ON a.location_id = l.location_id
		ORDER BY l.name ASC, a.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return scanViews(rows)
}

// SearchViews returns assets whose name or description contains term,
// joined and ordered like ListViews. SQLite LIKE semantics: substring
// match with ASCII case folding, no tokenization.
func (s *AssetStore) SearchViews(ctx context.Context, term string) ([]*domain.AssetView, error) {
	pattern := "%" + term + "%"

	rows, err := s.db.QueryContext(ctx, `
		SELECT a.asset_id, l.name, a.name, a.description, a.category, a.condition
		FROM assets a
		JOIN locations l ON a.location_id = l.location_id
		WHERE a.name LIKE ? OR a.description LIKE ?
		ORDER BY l.name ASC, a.name ASC
	`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search assets: %w", err)
	}
	return scanViews(rows)
}

func scanViews(rows *sql.Rows) ([]*domain.AssetView, error) {
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var views []*domain.AssetView
	for rows.Next() {
		v := &domain.AssetView{}
		if err := rows.Scan(&v.AssetID, &v.LocationName, &v.Name, &v.Description, &v.Category, &v.Condition); err != nil {
			return nil, fmt.Errorf("failed to scan asset view: %w", err)
		}
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset views: %w", err)
	}

	return views, nil
}

// ListForReport returns the report detail lines for one location, ordered by
// asset name.
func (s *AssetStore) ListForReport(ctx context.Context, locationID int64) ([]*domain.ReportAsset, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, category, condition, purchase_date, purchase_price
		FROM assets WHERE location_id = ? ORDER BY name ASC
	`, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list report assets: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var assets []*domain.ReportAsset
	for rows.Next() {
		a := &domain.ReportAsset{}
		if err := rows.Scan(&a.Name, &a.Category, &a.Condition, &a.PurchaseDate, &a.PurchasePrice); err != nil {
			return nil, fmt.Errorf("failed to scan report asset: %w", err)
		}
		assets = append(assets, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report assets: %w", err)
	}

	return assets, nil
}

// CountAll returns the total number of asset rows.
func (s *AssetStore) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return count, nil
}
