package bookings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/enums"
	"github.com/hyrpunkten/hyrpunkten-backend/pkg/types"
)

func setupBookingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schemas := []string{
		`CREATE TABLE IF NOT EXISTS bookings (
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'draft',
  delivery_method TEXT NOT NULL DEFAULT 'internal',
  pickup_date DATETIME,
  pickup_time TEXT NOT NULL DEFAULT '',
  delivery_date DATETIME,
  delivery_time TEXT NOT NULL DEFAULT '',
  shipping_base_cost_ore INTEGER NOT NULL DEFAULT 0,
  rental_days INTEGER NOT NULL DEFAULT 1,
  product_subtotal_ore INTEGER NOT NULL DEFAULT 0,
  product_discount_ore INTEGER NOT NULL DEFAULT 0,
  wrapping_total_ore INTEGER NOT NULL DEFAULT 0,
  addons_total_ore INTEGER NOT NULL DEFAULT 0,
  shipping_cost_ore INTEGER NOT NULL DEFAULT 0,
  shipping_discount_ore INTEGER NOT NULL DEFAULT 0,
  ob_surcharge_ore INTEGER NOT NULL DEFAULT 0,
  taxable_subtotal_ore INTEGER NOT NULL DEFAULT 0,
  tax_ore INTEGER NOT NULL DEFAULT 0,
  grand_total_ore INTEGER NOT NULL DEFAULT 0,
  deposit_ore INTEGER NOT NULL DEFAULT 0,
  balance_ore INTEGER NOT NULL DEFAULT 0,
  ob_trigger_reasons TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS booking_lines (
  id TEXT PRIMARY KEY,
  booking_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0,
  price_per_period_ore INTEGER NOT NULL DEFAULT 0,
  wrapping_selected INTEGER NOT NULL DEFAULT 0,
  wrapping_cost_ore INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS booking_addons (
  id TEXT PRIMARY KEY,
  booking_id TEXT NOT NULL,
  addon_id TEXT NOT NULL,
  addon_name TEXT NOT NULL,
  price_ore INTEGER NOT NULL DEFAULT 0,
  quantity INTEGER NOT NULL DEFAULT 1,
  selected INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS quotations (
  id TEXT PRIMARY KEY,
  booking_id TEXT NOT NULL UNIQUE,
  status TEXT NOT NULL DEFAULT 'open',
  rental_days INTEGER NOT NULL DEFAULT 1,
  product_subtotal_ore INTEGER NOT NULL DEFAULT 0,
  product_discount_ore INTEGER NOT NULL DEFAULT 0,
  wrapping_total_ore INTEGER NOT NULL DEFAULT 0,
  addons_total_ore INTEGER NOT NULL DEFAULT 0,
  shipping_cost_ore INTEGER NOT NULL DEFAULT 0,
  shipping_discount_ore INTEGER NOT NULL DEFAULT 0,
  ob_surcharge_ore INTEGER NOT NULL DEFAULT 0,
  taxable_subtotal_ore INTEGER NOT NULL DEFAULT 0,
  tax_ore INTEGER NOT NULL DEFAULT 0,
  grand_total_ore INTEGER NOT NULL DEFAULT 0,
  deposit_ore INTEGER NOT NULL DEFAULT 0,
  balance_ore INTEGER NOT NULL DEFAULT 0,
  ob_trigger_reasons TEXT,
  finalized_at DATETIME,
  signed_by TEXT NOT NULL DEFAULT '',
  created_at DATETIME,
  updated_at DATETIME
);`,
	}
	for _, stmt := range schemas {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func TestRepositoryAssignsIDs(t *testing.T) {
	db := setupBookingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	booking := &models.Booking{CustomerName: "Eva Lind", Delivery: enums.DeliveryMethodInternal}
	_, err := repo.Create(ctx, booking)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, booking.ID)

	lines := []models.BookingLine{
		{ProductID: uuid.New(), ProductName: "Stol", Quantity: 4, PricePerPeriodOre: 2_500},
		{ProductID: uuid.New(), ProductName: "Bord", Quantity: 1, PricePerPeriodOre: 10_000},
	}
	require.NoError(t, repo.ReplaceLines(ctx, booking.ID, lines))

	quotation := &models.Quotation{BookingID: booking.ID}
	require.NoError(t, repo.CreateQuotation(ctx, quotation))
	assert.NotEqual(t, uuid.Nil, quotation.ID)
	assert.Equal(t, enums.QuotationStatusOpen, quotation.Status)

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	require.Len(t, found.Lines, 2)
	for _, line := range found.Lines {
		assert.NotEqual(t, uuid.Nil, line.ID)
		assert.Equal(t, booking.ID, line.BookingID)
	}
}

func TestRepositoryCreateAndFind(t *testing.T) {
	db := setupBookingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	booking := &models.Booking{
		ID:           uuid.New(),
		CustomerName: "Eva Lind",
		Delivery:     enums.DeliveryMethodInternal,
		Pricing:      types.PricingSnapshot{RentalDays: 2, GrandTotalOre: 50_000},
	}
	_, err := repo.Create(ctx, booking)
	require.NoError(t, err)
	assert.Equal(t, enums.BookingStatusDraft, booking.Status)

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eva Lind", found.CustomerName)
	assert.Equal(t, int64(50_000), found.Pricing.GrandTotalOre)
	assert.Empty(t, found.Lines)
}

func TestRepositoryReplaceLines(t *testing.T) {
	db := setupBookingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	booking := &models.Booking{ID: uuid.New(), CustomerName: "Eva Lind", Delivery: enums.DeliveryMethodInternal}
	_, err := repo.Create(ctx, booking)
	require.NoError(t, err)

	first := []models.BookingLine{
		{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Stol", Quantity: 4, PricePerPeriodOre: 2_500},
		{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Bord", Quantity: 1, PricePerPeriodOre: 10_000},
	}
	require.NoError(t, repo.ReplaceLines(ctx, booking.ID, first))

	second := []models.BookingLine{
		{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Partytält", Quantity: 1, PricePerPeriodOre: 100_000},
	}
	require.NoError(t, repo.ReplaceLines(ctx, booking.ID, second))

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, "Partytält", found.Lines[0].ProductName)
	assert.Equal(t, booking.ID, found.Lines[0].BookingID)
}

func TestRepositorySyncOpenQuotationSnapshot(t *testing.T) {
	db := setupBookingsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	booking := &models.Booking{ID: uuid.New(), CustomerName: "Eva Lind", Delivery: enums.DeliveryMethodInternal}
	_, err := repo.Create(ctx, booking)
	require.NoError(t, err)

	quotation := &models.Quotation{ID: uuid.New(), BookingID: booking.ID, Status: enums.QuotationStatusOpen}
	require.NoError(t, repo.CreateQuotation(ctx, quotation))

	snap := types.PricingSnapshot{RentalDays: 3, GrandTotalOre: 375_000, DepositOre: 187_500, BalanceOre: 187_500}
	require.NoError(t, repo.SyncOpenQuotationSnapshot(ctx, booking.ID, snap))

	var got models.Quotation
	require.NoError(t, db.First(&got, "booking_id = ?", booking.ID).Error)
	assert.Equal(t, int64(375_000), got.Pricing.GrandTotalOre)

	// finalized quotations keep their contracted totals
	require.NoError(t, db.Model(&models.Quotation{}).
		Where("id = ?", quotation.ID).
		Update("status", enums.QuotationStatusFinalized).Error)

	bumped := snap
	bumped.GrandTotalOre = 999_999
	require.NoError(t, repo.SyncOpenQuotationSnapshot(ctx, booking.ID, bumped))

	require.NoError(t, db.First(&got, "booking_id = ?", booking.ID).Error)
	assert.Equal(t, int64(375_000), got.Pricing.GrandTotalOre)
}
