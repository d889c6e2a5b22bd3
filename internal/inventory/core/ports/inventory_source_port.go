package ports

import (
	"context"

	"tyre-dashboard-service/internal/inventory/core/domain"
)

// InventorySourcePort is where raw inventory snapshots come from.
type InventorySourcePort interface {
	ListInventory(ctx context.Context) ([]domain.Record, error)
	FilterOptions(ctx context.Context) (*domain.FilterOptions, error)
}
