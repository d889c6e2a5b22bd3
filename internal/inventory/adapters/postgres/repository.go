package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"tyre-dashboard-service/internal/inventory/core/domain"
	"tyre-dashboard-service/internal/inventory/core/ports"
	pg "tyre-dashboard-service/internal/platform/postgres"
)

// DefaultLimit caps how many rows one snapshot loads.
const DefaultLimit = 10000

// Options restrict what a snapshot loads. Year 0 loads every year.
type Options struct {
	Year  int
	Limit int
}

type InventoryRepository struct {
	db   pg.DB
	opts Options
}

func NewInventoryRepository(db pg.DB, opts Options) *InventoryRepository {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	return &InventoryRepository{db: db, opts: opts}
}

var _ ports.InventorySourcePort = (*InventoryRepository)(nil)

// Capture times are stored in UTC; the plant works in IST (UTC+05:30).
const listInventorySQL = `
SELECT
    i.id::text,
    i.section,
    i.machine_id::text,
    m.machine_display_name,
    m.machine_display_name,
    m.machine_display_id,
    i.shift,
    i.item_code,
    i.lot_no,
    i.item_type,
    i.mhe_no,
    i.booked_quantity::text,
    i.current_quantity::text,
    i.uom,
    i.quality_status,
    to_char(i.created_at, 'YYYY-MM-DD"T"HH24:MI:SS'),
    to_char(i.created_at + INTERVAL '330 minutes', 'YYYY-MM-DD"T"HH24:MI:SS'),
    to_char(i.production_time, 'YYYY-MM-DD'),
    to_char(i.production_time, 'HH24:MI:SS'),
    to_char(i.use_after, 'YYYY-MM-DD"T"HH24:MI:SS'),
    to_char(i.use_before, 'YYYY-MM-DD"T"HH24:MI:SS')
FROM inventory i
LEFT JOIN master_machines m ON i.machine_id = m.id
WHERE ($1::int = 0 OR EXTRACT(YEAR FROM i.created_at)::int = $1::int)
ORDER BY i.created_at DESC
LIMIT $2
`

func (r *InventoryRepository) ListInventory(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, listInventorySQL, r.opts.Year, r.opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		var cols [21]sql.NullString
		dest := make([]any, len(cols))
		for i := range cols {
			dest[i] = &cols[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}

		out = append(out, domain.Record{
			ID:                 cols[0].String,
			Section:            cols[1].String,
			MachineID:          cols[2].String,
			MachineName:        cols[3].String,
			MachineDisplayName: cols[4].String,
			MachineDisplayID:   cols[5].String,
			Shift:              cols[6].String,
			ItemCode:           cols[7].String,
			LotNo:              cols[8].String,
			ItemType:           cols[9].String,
			MHENo:              cols[10].String,
			BookedQuantity:     domain.Quantity(cols[11].String),
			CurrentQuantity:    domain.Quantity(cols[12].String),
			UOM:                cols[13].String,
			QualityStatus:      cols[14].String,
			CapturedDate:       cols[15].String,
			CapturedDateIST:    cols[16].String,
			DateOfProduction:   cols[17].String,
			TimeOfProduction:   cols[18].String,
			UseAfter:           cols[19].String,
			UseBefore:          cols[20].String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// One round trip: every selector is an ARRAY subquery over the same year.
const filterOptionsSQL = `
SELECT
    ARRAY(
        SELECT DISTINCT to_char(created_at + INTERVAL '330 minutes', 'YYYY-MM-DD') AS d
        FROM inventory
        WHERE created_at IS NOT NULL AND ($1::int = 0 OR EXTRACT(YEAR FROM created_at)::int = $1::int)
        ORDER BY d DESC
        LIMIT 100
    ),
    ARRAY(
        SELECT DISTINCT item_type FROM inventory
        WHERE item_type <> '' AND ($1::int = 0 OR EXTRACT(YEAR FROM created_at)::int = $1::int)
        ORDER BY item_type
    ),
    ARRAY(
        SELECT DISTINCT item_code FROM inventory
        WHERE item_code <> '' AND ($1::int = 0 OR EXTRACT(YEAR FROM created_at)::int = $1::int)
        ORDER BY item_code
        LIMIT 200
    ),
    ARRAY(
        SELECT DISTINCT m.machine_display_name
        FROM inventory i
        JOIN master_machines m ON i.machine_id = m.id
        WHERE m.machine_display_name <> '' AND ($1::int = 0 OR EXTRACT(YEAR FROM i.created_at)::int = $1::int)
        ORDER BY m.machine_display_name
    ),
    ARRAY(
        SELECT DISTINCT machine_id::text AS id FROM inventory
        WHERE machine_id IS NOT NULL AND ($1::int = 0 OR EXTRACT(YEAR FROM created_at)::int = $1::int)
        ORDER BY id
    ),
    ARRAY(
        SELECT DISTINCT uom FROM inventory
        WHERE uom <> '' AND ($1::int = 0 OR EXTRACT(YEAR FROM created_at)::int = $1::int)
        ORDER BY uom
    ),
    ARRAY(
        SELECT DISTINCT quality_status FROM inventory
        WHERE quality_status <> '' AND ($1::int = 0 OR EXTRACT(YEAR FROM created_at)::int = $1::int)
        ORDER BY quality_status
    ),
    ARRAY(
        SELECT DISTINCT mhe_no FROM inventory
        WHERE mhe_no <> '' AND ($1::int = 0 OR EXTRACT(YEAR FROM created_at)::int = $1::int)
        ORDER BY mhe_no
        LIMIT 200
    )
`

func (r *InventoryRepository) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	rows, err := r.db.QueryContext(ctx, filterOptionsSQL, r.opts.Year)
	if err != nil {
		return nil, fmt.Errorf("query filter options: %w", err)
	}
	defer rows.Close()

	opts := &domain.FilterOptions{}
	if rows.Next() {
		if err := rows.Scan(
			pq.Array(&opts.CapturedDates),
			pq.Array(&opts.ItemTypes),
			pq.Array(&opts.ItemCodes),
			pq.Array(&opts.MachineNames),
			pq.Array(&opts.MachineIDs),
			pq.Array(&opts.UOMs),
			pq.Array(&opts.QualityStatuses),
			pq.Array(&opts.MHENos),
		); err != nil {
			return nil, fmt.Errorf("scan filter options: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return opts, nil
}
