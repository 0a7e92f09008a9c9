package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/archive"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInFlight(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockArchiveRepository struct{ mock.Mock }

func (m *MockArchiveRepository) Add(ctx context.Context, a *archive.ArchivedOrder) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockArchiveRepository) GetByOriginalOrderID(ctx context.Context, id kernel.UUID) (*archive.ArchivedOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*archive.ArchivedOrder), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockArchivalUoW struct{ mock.Mock }

func (m *MockArchivalUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockArchivalUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockArchivalUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockArchivalUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockArchivalUoW) ArchiveRepository() ports.ArchiveRepository {
	args := m.Called()
	return args.Get(0).(ports.ArchiveRepository)
}

type MockArchivalUoWFactory struct{ mock.Mock }

func (m *MockArchivalUoWFactory) Create() commands.ArchivalUoW {
	args := m.Called()
	return args.Get(0).(commands.ArchivalUoW)
}

type MockCarrierGateway struct{ mock.Mock }

func (m *MockCarrierGateway) SubmitShipment(ctx context.Context, request ports.ShipmentRequest) (ports.TrackingResult, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(ports.TrackingResult), args.Error(1)
}

func (m *MockCarrierGateway) SubmitShipmentBatch(ctx context.Context, requests []ports.ShipmentRequest) (map[string]ports.BatchEntry, error) {
	args := m.Called(ctx, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]ports.BatchEntry), args.Error(1)
}

func (m *MockCarrierGateway) FetchStatuses(ctx context.Context, carrierOrderIDs []string) ([]ports.StatusReport, error) {
	args := m.Called(ctx, carrierOrderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.StatusReport), args.Error(1)
}

// newPendingOrder builds a minimal valid order in pending status with a
// carrier-served destination.
func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Amina B", "0555123456", "")
	require.NoError(t, err)

	destination, err := order.NewDestination(16, "Alger", 1601, "Bab El Oued", "12 Rue Didouche", order.DeliveryHome, 16)
	require.NoError(t, err)

	unitPrice, err := kernel.NewMoney(1500)
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Hoodie", "L", "black", unitPrice, 2)
	require.NoError(t, err)

	payment, err := order.NewPayment(order.CashOnDelivery, order.Unpaid)
	require.NoError(t, err)

	shipping, err := kernel.NewMoney(500)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), customer, destination, []*order.Item{item}, payment, shipping, time.Now().UTC())
	require.NoError(t, err)

	return aggregate
}

// newConfirmedOrder builds an order ready for expedition.
func newConfirmedOrder(t *testing.T) *order.Order {
	t.Helper()

	aggregate := newPendingOrder(t)
	require.NoError(t, aggregate.Confirm(kernel.NewUUID(), time.Now().UTC()))
	return aggregate
}

// newUnmappedConfirmedOrder builds a confirmed order whose wilaya the carrier
// does not serve.
func newUnmappedConfirmedOrder(t *testing.T) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Amina B", "0555123456", "")
	require.NoError(t, err)

	destination, err := order.NewDestination(49, "Timimoun", 4901, "Timimoun", "Centre ville", order.DeliveryHome, 0)
	require.NoError(t, err)

	unitPrice, err := kernel.NewMoney(1500)
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Hoodie", "L", "black", unitPrice, 1)
	require.NoError(t, err)

	payment, err := order.NewPayment(order.CashOnDelivery, order.Unpaid)
	require.NoError(t, err)

	shipping, err := kernel.NewMoney(800)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), customer, destination, []*order.Item{item}, payment, shipping, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, aggregate.Confirm(kernel.NewUUID(), time.Now().UTC()))

	return aggregate
}

// newExpediatedOrder builds an order already handed to the carrier.
func newExpediatedOrder(t *testing.T, carrierOrderID string) *order.Order {
	t.Helper()

	aggregate := newConfirmedOrder(t)
	require.NoError(t, aggregate.MarkExpediated(carrierOrderID, "TRK-"+carrierOrderID, time.Now().UTC()))
	return aggregate
}
