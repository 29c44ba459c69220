package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hyrpunkten/hyrpunkten-backend/pkg/db/models"
)

// List page bounds. The catalog is small but listings stay bounded anyway.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Repository exposes read access to the rentable catalog. Products and
// add-ons are maintained by back office tooling; the API only reads them.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetProduct loads a single product by id regardless of active state.
// Callers decide whether inactive products are acceptable.
func (r *Repository) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var row models.Product
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// GetAddon loads a single add-on by id.
func (r *Repository) GetAddon(ctx context.Context, id uuid.UUID) (*models.Addon, error) {
	var row models.Addon
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListActiveProducts returns a page of the rentable catalog ordered by name.
func (r *Repository) ListActiveProducts(ctx context.Context, limit, offset int) ([]models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Limit(clampLimit(limit)).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListActiveAddons returns a page of add-ons offered on the quotation page.
func (r *Repository) ListActiveAddons(ctx context.Context, limit, offset int) ([]models.Addon, error) {
	var rows []models.Addon
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Limit(clampLimit(limit)).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
