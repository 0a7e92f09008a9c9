// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projection rows straight
// from the database.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// GetActiveOrdersQuery lists live orders for the operations screen, newest
// first. An empty status token means all statuses; page is 1-based.
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	status   *order.Status
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a listing query. statusToken filters by one
// status when non-empty; page defaults to 1 and pageSize to defaultPageSize
// when non-positive.
func NewGetActiveOrdersQuery(statusToken string, page, pageSize int) (GetActiveOrdersQuery, error) {
	q := GetActiveOrdersQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}

	if statusToken != "" {
		status, err := order.StatusFromString(statusToken)
		if err != nil {
			return GetActiveOrdersQuery{}, err
		}
		q.status = &status
	}

	if q.page <= 0 {
		q.page = 1
	}
	if q.pageSize <= 0 {
		q.pageSize = defaultPageSize
	}
	if q.pageSize > maxPageSize {
		return GetActiveOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetActiveOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q GetActiveOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetActiveOrdersQuery) PageSize() int {
	return q.pageSize
}

// GetActiveOrdersQueryResponse is one row of the live order listing.
type GetActiveOrdersQueryResponse struct {
	ID             kernel.UUID
	CustomerName   string
	CustomerPhone  string
	WilayaName     string
	CommuneName    string
	Status         string
	Responded      bool
	Total          float64
	TrackingNumber string
	EcotrackStatus string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
