package domain

import "time"

// Location is a physical site that holds zero or more assets. Address and
// contact fields are free text and may be empty.
type Location struct {
	ID            int64
	Name          string
	Address       string
	ContactPerson string
	ContactPhone  string
}

// Asset is a tracked physical item belonging to exactly one location.
// Optional fields are nil when unknown; dates are ISO-8601 (YYYY-MM-DD)
// strings as entered.
type Asset struct {
	ID                  int64
	LocationID          int64
	Name                string
	Description         string
	SerialNumber        string
	Category            string
	Condition           string
	PurchaseDate        *string
	PurchasePrice       *float64
	LastMaintenanceDate *string
}

// NewAsset carries the fields of an asset to be created.
type NewAsset struct {
	LocationID          int64
	Name                string
	Description         string
	SerialNumber        string
	Category            string
	Condition           string
	PurchaseDate        *string
	PurchasePrice       *float64
	LastMaintenanceDate *string
}

// AssetView is the read-only projection of an asset joined to its location
// name, used for listing and search display.
type AssetView struct {
	AssetID      int64
	LocationName string
	Name         string
	Description  string
	Category     string
	Condition    string
}

// ReportAsset is one asset line in the summary report.
type ReportAsset struct {
	Name          string
	Category      string
	Condition     string
	PurchaseDate  *string
	PurchasePrice *float64
}

// ReportLocation is one location entry in the summary report. Locations with
// no assets appear with a zero count and an empty asset list.
type ReportLocation struct {
	LocationID int64
	Name       string
	AssetCount int
	Assets     []*ReportAsset
}

// Report aggregates every location with its assets. TotalAssets is the sum
// of the per-location counts.
type Report struct {
	GeneratedAt time.Time
	Locations   []*ReportLocation
	TotalAssets int
}
