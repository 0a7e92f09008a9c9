package archiverepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/archive"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint breach.
const uniqueViolation = "23505"

// GormArchiveRepository implements ArchiveRepository using GORM.
type GormArchiveRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormArchiveRepository creates a new GORM archive repository.
func NewGormArchiveRepository(db *gorm.DB, tracker aggregateTracker) *GormArchiveRepository {
	return &GormArchiveRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts an archive snapshot with its items. A second snapshot for the
// same original order trips the unique constraint on original_order_id and is
// reported as archive.ErrAlreadyArchived.
func (r *GormArchiveRepository) Add(ctx context.Context, snapshot *archive.ArchivedOrder) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(snapshot)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return archive.ErrAlreadyArchived
		}
		return err
	}

	r.tracker.TrackAggregate(snapshot.ID(), snapshot)
	return nil
}

// GetByOriginalOrderID retrieves the snapshot taken from the given live order.
func (r *GormArchiveRepository) GetByOriginalOrderID(ctx context.Context, orderID kernel.UUID) (*archive.ArchivedOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ArchivedOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "original_order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("archived order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
