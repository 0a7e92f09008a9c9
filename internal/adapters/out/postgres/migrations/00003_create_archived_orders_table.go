package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upArchivedOrdersTable, downArchivedOrdersTable)
}

func upArchivedOrdersTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE archived_orders
(
    id UUID PRIMARY KEY,
    original_order_id UUID NOT NULL UNIQUE,
    customer_name VARCHAR(255) NOT NULL,
    customer_phone VARCHAR(32) NOT NULL,
    customer_email VARCHAR(255) NOT NULL DEFAULT '',
    wilaya_id INT NOT NULL,
    wilaya_name VARCHAR(255) NOT NULL,
    commune_id INT NOT NULL,
    commune_name VARCHAR(255) NOT NULL,
    address TEXT NOT NULL,
    delivery_mode VARCHAR(16) NOT NULL,
    subtotal NUMERIC(12,2) NOT NULL,
    shipping_cost NUMERIC(12,2) NOT NULL,
    total NUMERIC(12,2) NOT NULL,
    payment_method VARCHAR(32) NOT NULL,
    payment_status VARCHAR(32) NOT NULL,
    status_at_archival VARCHAR(32) NOT NULL,
    reason VARCHAR(32) NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    archived_by UUID NOT NULL,
    archived_at TIMESTAMPTZ NOT NULL,
    order_created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX idx_archived_orders_reason ON archived_orders (reason);
CREATE INDEX idx_archived_orders_archived_at ON archived_orders (archived_at DESC);`)
	return err
}

func downArchivedOrdersTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE archived_orders;")
	return err
}
