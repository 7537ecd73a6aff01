package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"assetreg/internal/domain"
)

// ValidationError reports bad input from the caller. It is recoverable: the
// dispatcher prints the message and returns to the menu, and no state has
// been mutated.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// locationRepository is the subset of store.LocationStore that
// RegisterService requires.
type locationRepository interface {
	Create(ctx context.Context, name, address, contactPerson, contactPhone string) (*domain.Location, error)
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	List(ctx context.Context) ([]*domain.Location, error)
	ListWithCounts(ctx context.Context) ([]*domain.ReportLocation, error)
}

// assetRepository is the subset of store.AssetStore that RegisterService
// requires.
type assetRepository interface {
	Create(ctx context.Context, a domain.NewAsset) (*domain.Asset, error)
	ListViews(ctx context.Context) ([]*domain.AssetView, error)
	SearchViews(ctx context.Context, term string) ([]*domain.AssetView, error)
	ListForReport(ctx context.Context, locationID int64) ([]*domain.ReportAsset, error)
}

type RegisterService struct {
	locations locationRepository
	assets    assetRepository
	logger    *slog.Logger
}

func NewRegisterService(locations locationRepository, assets assetRepository, logger *slog.Logger) *RegisterService {
	return &RegisterService{
		locations: locations,
		assets:    assets,
		logger:    logger,
	}
}

// AddLocation inserts a new location and returns it with its generated id.
// Emptiness of name is not re-validated here; the dispatcher supplies
// trimmed input. Duplicate names are allowed.
func (s *RegisterService) AddLocation(ctx context.Context, name, address, contactPerson, contactPhone string) (*domain.Location, error) {
	loc, err := s.locations.Create(ctx, name, address, contactPerson, contactPhone)
	if err != nil {
		return nil, err
	}
	s.logger.Info("location added", "location_id", loc.ID, "name", loc.Name)
	return loc, nil
}

func (s *RegisterService) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	return s.locations.List(ctx)
}

// AssetInput carries raw asset fields from the dispatcher. PurchaseDate,
// PurchasePrice and LastMaintenanceDate are entered as strings; empty means
// unknown.
type AssetInput struct {
	LocationID          int64
	Name                string
	Description         string
	SerialNumber        string
	Category            string
	Condition           string
	PurchaseDate        string
	PurchasePrice       string
	LastMaintenanceDate string
}

// AddAsset validates the referenced location, normalizes absent optional
// fields, inserts the asset and returns it along with the location name for
// the caller's confirmation message. Validation failures return a
// *ValidationError and leave the store untouched.
func (s *RegisterService) AddAsset(ctx context.Context, in AssetInput) (*domain.Asset, string, error) {
	loc, err := s.locations.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify location: %w", err)
	}
	if loc == nil {
		return nil, "", validationErrorf("location %d does not exist", in.LocationID)
	}

	price, err := parsePrice(in.PurchasePrice)
	if err != nil {
		return nil, "", err
	}

	asset, err := s.assets.Create(ctx, domain.NewAsset{
		LocationID:          in.LocationID,
		Name:                in.Name,
		Description:         in.Description,
		SerialNumber:        in.SerialNumber,
		Category:            in.Category,
		Condition:           in.Condition,
		PurchaseDate:        optionalText(in.PurchaseDate),
		PurchasePrice:       price,
		LastMaintenanceDate: optionalText(in.LastMaintenanceDate),
	})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("asset added", "asset_id", asset.ID, "name", asset.Name, "location_id", loc.ID)
	return asset, loc.Name, nil
}

func (s *RegisterService) ListAssets(ctx context.Context) ([]*domain.AssetView, error) {
	return s.assets.ListViews(ctx)
}

// SearchAssets assumes a non-empty term; the dispatcher rejects empty and
// whitespace-only input before calling here.
func (s *RegisterService) SearchAssets(ctx context.Context, term string) ([]*domain.AssetView, error) {
	return s.assets.SearchViews(ctx, term)
}

// GenerateReport returns every location with its asset count and detail
// lines. The grand total is summed from the per-location counts rather than
// queried separately.
func (s *RegisterService) GenerateReport(ctx context.Context) (*domain.Report, error) {
	locations, err := s.locations.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		GeneratedAt: time.Now(),
		Locations:   locations,
	}
	for _, loc := range locations {
		assets, err := s.assets.ListForReport(ctx, loc.LocationID)
		if err != nil {
			return nil, fmt.Errorf("failed to list assets for location %d: %w", loc.LocationID, err)
		}
		loc.Assets = assets
		report.TotalAssets += loc.AssetCount
	}

	return report, nil
}

// optionalText maps the empty string to a true absence marker so it is
// stored as NULL, never as "".
func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parsePrice parses an optional purchase price. Empty means unknown; a
// malformed or negative value fails loudly instead of being coerced to
// absent.
func parsePrice(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, validationErrorf("invalid purchase price %q", s)
	}
	if price < 0 {
		return nil, validationErrorf("purchase price must not be negative")
	}
	return &price, nil
}
