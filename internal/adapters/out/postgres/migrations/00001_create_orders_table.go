// Package migrations contains the goose schema migrations for the order and
// archive stores. Migrations are registered via init and applied at startup.
package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upOrdersTable, downOrdersTable)
}

func upOrdersTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE orders
(
    id UUID PRIMARY KEY,
    customer_name VARCHAR(255) NOT NULL,
    customer_phone VARCHAR(32) NOT NULL,
    customer_email VARCHAR(255) NOT NULL DEFAULT '',
    wilaya_id INT NOT NULL,
    wilaya_name VARCHAR(255) NOT NULL,
    commune_id INT NOT NULL,
    commune_name VARCHAR(255) NOT NULL,
    address TEXT NOT NULL,
    delivery_mode VARCHAR(16) NOT NULL,
    carrier_zone INT NOT NULL DEFAULT 0,
    subtotal NUMERIC(12,2) NOT NULL,
    shipping_cost NUMERIC(12,2) NOT NULL,
    total NUMERIC(12,2) NOT NULL,
    payment_method VARCHAR(32) NOT NULL,
    payment_status VARCHAR(32) NOT NULL,
    status VARCHAR(32) NOT NULL,
    responded BOOLEAN NOT NULL DEFAULT FALSE,
    confirmed_by UUID,
    confirmed_at TIMESTAMPTZ,
    expediated_at TIMESTAMPTZ,
    shipped_at TIMESTAMPTZ,
    delivered_at TIMESTAMPTZ,
    returned_at TIMESTAMPTZ,
    cancellation_reason VARCHAR(32),
    cancellation_notes TEXT NOT NULL DEFAULT '',
    cancelled_by UUID,
    cancelled_at TIMESTAMPTZ,
    carrier_order_id VARCHAR(64) NOT NULL DEFAULT '',
    tracking_number VARCHAR(64) NOT NULL DEFAULT '',
    ecotrack_status VARCHAR(64) NOT NULL DEFAULT '',
    version INT NOT NULL DEFAULT 1,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX idx_orders_status ON orders (status);
CREATE INDEX idx_orders_carrier_order_id ON orders (carrier_order_id);
CREATE INDEX idx_orders_created_at ON orders (created_at DESC);`)
	return err
}

func downOrdersTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE orders;")
	return err
}
