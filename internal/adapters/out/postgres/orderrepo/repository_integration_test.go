package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	orderRepository *orderrepo.GormOrderRepository
	tracker         *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	// Create a fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.orderRepository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsOrderAndItems() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()

	err := suite.orderRepository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(len(aggregate.Items()))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAggregate() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.orderRepository.Add(ctx, original))

	retrieved, err := suite.orderRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Status(), retrieved.Status())
	suite.Equal(original.Version(), retrieved.Version())
	suite.Equal(original.Customer().Name(), retrieved.Customer().Name())
	suite.Equal(original.Customer().Phone(), retrieved.Customer().Phone())
	suite.Equal(original.Destination().WilayaID(), retrieved.Destination().WilayaID())
	suite.Equal(original.Destination().CommuneName(), retrieved.Destination().CommuneName())
	suite.Equal(original.Destination().CarrierZone(), retrieved.Destination().CarrierZone())
	suite.True(original.Total().IsEqual(retrieved.Total()))
	suite.True(original.ShippingCost().IsEqual(retrieved.ShippingCost()))

	suite.Require().Len(retrieved.Items(), len(original.Items()))
	for i, originalItem := range original.Items() {
		retrievedItem := retrieved.Items()[i]
		suite.Equal(originalItem.ID(), retrievedItem.ID())
		suite.Equal(originalItem.Name(), retrievedItem.Name())
		suite.Equal(originalItem.Quantity(), retrievedItem.Quantity())
		suite.True(originalItem.LineTotal().IsEqual(retrievedItem.LineTotal()))
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.orderRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ConfirmedOrder_BumpsStoredVersion() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Twice()
	suite.Require().NoError(suite.orderRepository.Add(ctx, aggregate))

	actor := kernel.NewUUID()
	suite.Require().NoError(aggregate.Confirm(actor, time.Now().UTC()))
	suite.Require().NoError(suite.orderRepository.Update(ctx, aggregate))

	retrieved, err := suite.orderRepository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Confirmed, retrieved.Status())
	suite.Equal(aggregate.Version()+1, retrieved.Version())
	suite.Require().NotNil(retrieved.ConfirmedBy())
	suite.Equal(actor, *retrieved.ConfirmedBy())
	suite.NotNil(retrieved.ConfirmedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrentModification() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", aggregate.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.orderRepository.Add(ctx, aggregate))

	// Two staff members load the same order; the slower write must lose.
	first, err := suite.orderRepository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.orderRepository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.MarkResponded(true, time.Now().UTC()))
	suite.Require().NoError(suite.orderRepository.Update(ctx, first))

	suite.Require().NoError(second.Confirm(kernel.NewUUID(), time.Now().UTC()))
	err = suite.orderRepository.Update(ctx, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	err := suite.orderRepository.Update(ctx, aggregate)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInFlight_ReturnsOnlyCarrierHeldOrders() {
	ctx := context.Background()

	pendingOrder := suite.createTestOrder()
	sentOrder := suite.createExpediatedOrder("ECO-100")
	shippedOrder := suite.createExpediatedOrder("ECO-200")
	shippedOrder.ApplyCarrierStatus("vers_wilaya", order.Shipped, time.Now().UTC())
	deliveredOrder := suite.createExpediatedOrder("ECO-300")
	deliveredOrder.ApplyCarrierStatus("livre", order.Delivered, time.Now().UTC())

	for _, aggregate := range []*order.Order{pendingOrder, sentOrder, shippedOrder, deliveredOrder} {
		suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
		suite.Require().NoError(suite.orderRepository.Add(ctx, aggregate))
	}

	inFlight, err := suite.orderRepository.GetAllInFlight(ctx, 100)
	suite.Require().NoError(err)

	suite.Require().Len(inFlight, 2)
	ids := map[kernel.UUID]bool{}
	for _, aggregate := range inFlight {
		ids[aggregate.ID()] = true
	}
	suite.True(ids[sentOrder.ID()])
	suite.True(ids[shippedOrder.ID()])
	suite.False(ids[pendingOrder.ID()])
	suite.False(ids[deliveredOrder.ID()])

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInFlight_RespectsLimit() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		aggregate := suite.createExpediatedOrder(kernel.NewUUID().String())
		suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
		suite.Require().NoError(suite.orderRepository.Add(ctx, aggregate))
	}

	inFlight, err := suite.orderRepository.GetAllInFlight(ctx, 2)
	suite.Require().NoError(err)

	suite.Len(inFlight, 2)
	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a pending order with two line items.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	customer, err := order.NewCustomer("Amina B", "0555123456", "amina@example.com")
	suite.Require().NoError(err)

	destination, err := order.NewDestination(
		16, "Alger", 1601, "Bab El Oued", "12 Rue Didouche", order.DeliveryHome, 16)
	suite.Require().NoError(err)

	payment, err := order.NewPayment(order.CashOnDelivery, order.Unpaid)
	suite.Require().NoError(err)

	unitPrice, err := kernel.NewMoney(1500)
	suite.Require().NoError(err)
	firstItem, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), "Hoodie", "L", "black", unitPrice, 2)
	suite.Require().NoError(err)

	secondPrice, err := kernel.NewMoney(700)
	suite.Require().NoError(err)
	secondItem, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), "Cap", "M", "navy", secondPrice, 1)
	suite.Require().NoError(err)

	shipping, err := kernel.NewMoney(500)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), customer, destination,
		[]*order.Item{firstItem, secondItem}, payment, shipping, time.Now().UTC())
	suite.Require().NoError(err)

	return aggregate
}

// createExpediatedOrder creates an order already handed over to the carrier.
func (suite *OrderRepositoryIntegrationTestSuite) createExpediatedOrder(carrierOrderID string) *order.Order {
	aggregate := suite.createTestOrder()
	now := time.Now().UTC()
	suite.Require().NoError(aggregate.Confirm(kernel.NewUUID(), now))
	suite.Require().NoError(aggregate.MarkExpediated(carrierOrderID, "TRK-"+carrierOrderID, now))
	return aggregate
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertItemCount verifies the number of line items in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
