package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upOrderItemsTable, downOrderItemsTable)
}

func upOrderItemsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE order_items
(
    id UUID PRIMARY KEY,
    order_id UUID NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
    product_id UUID NOT NULL,
    name VARCHAR(255) NOT NULL,
    size VARCHAR(32) NOT NULL DEFAULT '',
    color VARCHAR(32) NOT NULL DEFAULT '',
    unit_price NUMERIC(12,2) NOT NULL,
    quantity INT NOT NULL
);

CREATE INDEX idx_order_items_order_id ON order_items (order_id);`)
	return err
}

func downOrderItemsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE order_items;")
	return err
}
