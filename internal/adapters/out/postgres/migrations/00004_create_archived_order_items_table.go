package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upArchivedOrderItemsTable, downArchivedOrderItemsTable)
}

func upArchivedOrderItemsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE archived_order_items
(
    id UUID PRIMARY KEY,
    archived_order_id UUID NOT NULL REFERENCES archived_orders (id) ON DELETE CASCADE,
    product_id UUID NOT NULL,
    name VARCHAR(255) NOT NULL,
    size VARCHAR(32) NOT NULL DEFAULT '',
    color VARCHAR(32) NOT NULL DEFAULT '',
    unit_price NUMERIC(12,2) NOT NULL,
    quantity INT NOT NULL,
    total_price NUMERIC(12,2) NOT NULL
);

CREATE INDEX idx_archived_order_items_archived_order_id ON archived_order_items (archived_order_id);`)
	return err
}

func downArchivedOrderItemsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE archived_order_items;")
	return err
}
