package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveOrdersQuery_Defaults(t *testing.T) {
	q, err := queries.NewGetActiveOrdersQuery("", 0, 0)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Nil(t, q.Status())
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, 50, q.PageSize())
}

func TestNewGetActiveOrdersQuery_StatusFilter(t *testing.T) {
	q, err := queries.NewGetActiveOrdersQuery("confirmed", 2, 20)
	require.NoError(t, err)
	require.NotNil(t, q.Status())
	assert.Equal(t, order.Confirmed, *q.Status())
	assert.Equal(t, 2, q.Page())
	assert.Equal(t, 20, q.PageSize())
}

func TestNewGetActiveOrdersQuery_UnknownStatusToken(t *testing.T) {
	_, err := queries.NewGetActiveOrdersQuery("teleported", 1, 10)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetActiveOrdersQuery_OversizedPage(t *testing.T) {
	_, err := queries.NewGetActiveOrdersQuery("", 1, 10_000)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetActiveOrdersQuery_Validate_ZeroValue(t *testing.T) {
	var q queries.GetActiveOrdersQuery
	require.ErrorIs(t, q.Validate(), queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestNewGetArchivedOrdersQuery_ReasonFilter(t *testing.T) {
	q, err := queries.NewGetArchivedOrdersQuery("no-response", 1, 10)
	require.NoError(t, err)
	require.NotNil(t, q.Reason())
	assert.Equal(t, order.ReasonNoResponse, *q.Reason())
}

func TestNewGetArchivedOrdersQuery_UnknownReasonToken(t *testing.T) {
	_, err := queries.NewGetArchivedOrdersQuery("rage-quit", 1, 10)
	require.Error(t, err)
}

func TestGetArchivedOrdersQuery_Validate_ZeroValue(t *testing.T) {
	var q queries.GetArchivedOrdersQuery
	require.ErrorIs(t, q.Validate(), queries.ErrGetArchivedOrdersQueryIsNotConstructed)
}
