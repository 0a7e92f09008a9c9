package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetArchivedOrdersQueryIsNotConstructed = errors.New(
	"GetArchivedOrdersQuery must be created via NewGetArchivedOrdersQuery constructor",
)

// GetArchivedOrdersQuery lists archive snapshots, most recently archived
// first. An empty reason token means all reasons; page is 1-based.
type GetArchivedOrdersQuery struct { //nolint:recvcheck //using for validation
	reason   *order.CancellationReason
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetArchivedOrdersQuery creates an archive listing query. reasonToken
// filters by one termination reason when non-empty.
func NewGetArchivedOrdersQuery(reasonToken string, page, pageSize int) (GetArchivedOrdersQuery, error) {
	q := GetArchivedOrdersQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}

	if reasonToken != "" {
		reason, err := order.ReasonFromString(reasonToken)
		if err != nil {
			return GetArchivedOrdersQuery{}, err
		}
		q.reason = &reason
	}

	if q.page <= 0 {
		q.page = 1
	}
	if q.pageSize <= 0 {
		q.pageSize = defaultPageSize
	}
	if q.pageSize > maxPageSize {
		return GetArchivedOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetArchivedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedOrdersQueryIsNotConstructed)
}

// Reason returns the optional reason filter.
func (q GetArchivedOrdersQuery) Reason() *order.CancellationReason {
	return q.reason
}

// Page returns the 1-based page number.
func (q GetArchivedOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetArchivedOrdersQuery) PageSize() int {
	return q.pageSize
}

// GetArchivedOrdersQueryResponse is one row of the archive listing.
type GetArchivedOrdersQueryResponse struct {
	ID               kernel.UUID
	OriginalOrderID  kernel.UUID
	CustomerName     string
	CustomerPhone    string
	WilayaName       string
	CommuneName      string
	Total            float64
	StatusAtArchival string
	Reason           string
	Notes            string
	ArchivedAt       time.Time
	OrderCreatedAt   time.Time
}
