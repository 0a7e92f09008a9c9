package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetArchivedOrdersQueryHandler reads the archive listing straight from the
// archived_orders table.
type GetArchivedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetArchivedOrdersQueryHandler creates a handler for the archive listing.
func NewGetArchivedOrdersQueryHandler(db *gorm.DB) GetArchivedOrdersQueryHandler {
	return GetArchivedOrdersQueryHandler{db: db}
}

// Handle executes the listing query and returns one page of rows.
func (h GetArchivedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetArchivedOrdersQuery,
) ([]GetArchivedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			original_order_id,
			customer_name,
			customer_phone,
			wilaya_name,
			commune_name,
			total,
			status_at_archival,
			reason,
			notes,
			archived_at,
			order_created_at
		FROM archived_orders
	`
	args := make([]any, 0, 3)
	if query.Reason() != nil {
		sql += ` WHERE reason = ?`
		args = append(args, query.Reason().String())
	}
	sql += ` ORDER BY archived_at DESC LIMIT ? OFFSET ?`
	args = append(args, query.PageSize(), (query.Page()-1)*query.PageSize())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	archived := make([]GetArchivedOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetArchivedOrdersQueryResponse
		var id, originalID uuid.UUID

		err = rows.Scan(
			&id,
			&originalID,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.WilayaName,
			&resp.CommuneName,
			&resp.Total,
			&resp.StatusAtArchival,
			&resp.Reason,
			&resp.Notes,
			&resp.ArchivedAt,
			&resp.OrderCreatedAt,
		)
		if err != nil {
			return nil, err
		}

		archiveID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = archiveID

		orderID, idErr := kernel.UUIDFromBytes(originalID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OriginalOrderID = orderID

		archived = append(archived, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return archived, nil
}
