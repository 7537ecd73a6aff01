package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetreg/internal/domain"
)

func newTestAsset(locationID int64, name string) domain.NewAsset {
	return domain.NewAsset{
		LocationID: locationID,
		Name:       name,
		Category:   "Equipment",
		Condition:  "Good",
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestAssetStoreCreateRoundTrip(t *testing.T) {
	d := openTestDB(t)
	t.Cleanup(func() { _ = d.Close() })

	locations := NewLocationStore(d)
	assets := NewAssetStore(d)
	ctx := context.Background()

	loc, err := locations.Create(ctx, "Main Hall", "", "", "")
	require.NoError(t, err)

	created, err := assets.Create(ctx, domain.NewAsset{
		LocationID:          loc.ID,
		Name:                "Projector",
		Description:         "Ceiling mounted",
		SerialNumber:        "SN-1042",
		Category:            "Equipment",
		Condition:           "Good",
		PurchaseDate:        strPtr("2023-06-15"),
		PurchasePrice:       floatPtr(450),
		LastMaintenanceDate: strPtr("2024-01-10"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := assets.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, loc.ID, got.LocationID)
	assert.Equal(t, "Projector", got.Name)
	assert.Equal(t, "Ceiling mounted", got.Description)
	assert.Equal(t, "SN-1042", got.SerialNumber)
	require.NotNil(t, got.PurchaseDate)
	assert.Equal(t, "2023-06-15", *got.PurchaseDate)
	require.NotNil(t, got.PurchasePrice)
	assert.Equal(t, 450.0, *got.PurchasePrice)
	require.NotNil(t, got.LastMaintenanceDate)
	assert.Equal(t, "2024-01-10", *got.LastMaintenanceDate)
}

func TestAssetStoreAbsentOptionalsStoredAsNull(t *testing.T) {
	d := openTestDB(t)
	t.Cleanup(func() { _ = d.Close() })

	locations := NewLocationStore(d)
	assets := NewAssetStore(d)
	ctx := context.Background()

	loc, err := locations.Create(ctx, "Main Hall", "", "", "")
	require.NoError(t, err)

	created, err := assets.Create(ctx, newTestAsset(loc.ID, "Lectern"))
	require.NoError(t, err)

	got, err := assets.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PurchaseDate)
	assert.Nil(t, got.PurchasePrice)
	assert.Nil(t, got.LastMaintenanceDate)

	// At rest the columns must be NULL, never the empty string.
	var nullDates, nullPrices int
	err = d.QueryRow(`
		SELECT COUNT(*) FROM assets
		WHERE asset_id = ? AND purchase_date IS NULL AND last_maintenance_date IS NULL
	`, created.ID).Scan(&nullDates)
	require.NoError(t, err)
	assert.Equal(t, 1, nullDates)

	err = d.QueryRow(`SELECT COUNT(*) FROM assets WHERE asset_id = ? AND purchase_price IS NULL`, created.ID).Scan(&nullPrices)
	require.NoError(t, err)
	assert.Equal(t, 1, nullPrices)
}

func TestAssetStoreListViewsOrdering(t *testing.T) {
	d := openTestDB(t)
	t.Cleanup(func() { _ = d.Close() })

	locations := NewLocationStore(d)
	assets := NewAssetStore(d)
	ctx := context.Background()

	west, err := locations.Create(ctx, "West Campus", "", "", "")
	require.NoError(t, err)
	annex, err := locations.Create(ctx, "Annex", "", "", "")
	require.NoError(t, err)

	_, err = assets.Create(ctx, newTestAsset(west.ID, "Projector"))
	require.NoError(t, err)
	_, err = assets.Create(ctx, newTestAsset(annex.ID, "Lectern"))
	require.NoError(t, err)
	_, err = assets.Create(ctx, newTestAsset(annex.ID, "Chairs"))
	require.NoError(t, err)

	views, err := assets.ListViews(ctx)
	require.NoError(t, err)
	require.Len(t, views, 3)

	// Location name ascending, then asset name ascending.
	assert.Equal(t, "Annex", views[0].LocationName)
	assert.Equal(t, "Chairs", views[0].Name)
	assert.Equal(t, "Annex", views[1].LocationName)
	assert.Equal(t, "Lectern", views[1].Name)
	assert.Equal(t, "West Campus", views[2].LocationName)
	assert.Equal(t, "Projector", views[2].Name)
}

func TestAssetStoreSearchViews(t *testing.T) {
	d := openTestDB(t)
	t.Cleanup(func() { _ = d.Close() })

	locations := NewLocationStore(d)
	assets := NewAssetStore(d)
	ctx := context.Background()

	loc, err := locations.Create(ctx, "Main Hall", "", "", "")
	require.NoError(t, err)

	projector := newTestAsset(loc.ID, "Projector")
	projector.Description = "Ceiling mounted"
	_, err = assets.Create(ctx, projector)
	require.NoError(t, err)
	_, err = assets.Create(ctx, newTestAsset(loc.ID, "Lectern"))
	require.NoError(t, err)

	// Substring of a name.
	views, err := assets.SearchViews(ctx, "ject")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Projector", views[0].Name)

	// Substring of a description.
	views, err = assets.SearchViews(ctx, "mounted")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Projector", views[0].Name)

	// No match anywhere.
	views, err = assets.SearchViews(ctx, "forklift")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestAssetStoreListForReportOrdering(t *testing.T) {
	d := openTestDB(t)
	t.Cleanup(func() { _ = d.Close() })

	locations := NewLocationStore(d)
	assets := NewAssetStore(d)
	ctx := context.Background()

	loc, err := locations.Create(ctx, "Main Hall", "", "", "")
	require.NoError(t, err)

	for _, name := range []string{"Projector", "Chairs", "Lectern"} {
		_, err = assets.Create(ctx, newTestAsset(loc.ID, name))
		require.NoError(t, err)
	}

	lines, err := assets.ListForReport(ctx, loc.ID)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "Chairs", lines[0].Name)
	assert.Equal(t, "Lectern", lines[1].Name)
	assert.Equal(t, "Projector", lines[2].Name)
}

func TestAssetStoreCountAll(t *testing.T) {
	d := openTestDB(t)
	t.Cleanup(func() { _ = d.Close() })

	locations := NewLocationStore(d)
	assets := NewAssetStore(d)
	ctx := context.Background()

	count, err := assets.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	loc, err := locations.Create(ctx, "Main Hall", "", "", "")
	require.NoError(t, err)
	_, err = assets.Create(ctx, newTestAsset(loc.ID, "Projector"))
	require.NoError(t, err)

	count, err = assets.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
