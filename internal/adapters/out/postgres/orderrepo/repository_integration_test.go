package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"
	"laundry/internal/pkg/errs"

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
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.TransitionRecordDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, transition_records").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithHistory() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	record, err := testOrder.ApplyTransition(
		order.Preparation,
		workflow.ScreenIntake,
		"all items checked in",
		"operator-7",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	err = suite.repository.UpdateWithHistory(ctx, testOrder, record)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))
	suite.True(testOrder.TenantID().IsEqual(retrievedOrder.TenantID()))
	suite.Equal(order.Preparation, retrievedOrder.Status())
	suite.Equal(3, retrievedOrder.ItemsCount())
	suite.Equal(8, retrievedOrder.PiecesTotal())
	suite.Equal(2, retrievedOrder.Version())

	history := retrievedOrder.History()
	suite.Require().Len(history, 1)
	suite.Equal(order.Intake, history[0].From())
	suite.Equal(order.Preparation, history[0].To())
	suite.Equal(workflow.ScreenIntake, history[0].Screen())
	suite.Equal("all items checked in", history[0].Notes())
	suite.Equal("operator-7", history[0].ActorID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AdvancesVersion() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.Require().NoError(testOrder.SetRackLocation("A-12"))
	err = suite.repository.Update(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Equal(2, testOrder.Version())

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("A-12", retrievedOrder.RackLocation())
	suite.Equal(2, retrievedOrder.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflictError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Two copies of the same order, loaded at the same version
	firstCopy, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	secondCopy, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(firstCopy.SetRackLocation("A-1"))
	suite.Require().NoError(suite.repository.Update(ctx, firstCopy))

	// The loser of the race must surface a conflict, not overwrite
	suite.Require().NoError(secondCopy.SetRackLocation("B-2"))
	err = suite.repository.Update(ctx, secondCopy)
	suite.Require().ErrorIs(err, order.ErrConflict)

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("A-1", retrievedOrder.RackLocation())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateWithHistory_StaleVersion_WritesNothing() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	firstCopy, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	secondCopy, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	now := time.Now().UTC()
	firstRecord, err := firstCopy.ApplyTransition(order.Preparation, workflow.ScreenIntake, "", "op-1", now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.UpdateWithHistory(ctx, firstCopy, firstRecord))

	secondRecord, err := secondCopy.ApplyTransition(order.Cancelled, workflow.ScreenManager, "", "op-2", now)
	suite.Require().NoError(err)
	err = suite.repository.UpdateWithHistory(ctx, secondCopy, secondRecord)
	suite.Require().ErrorIs(err, order.ErrConflict)

	// The losing transition must leave neither a status change nor a record
	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparation, retrievedOrder.Status())
	suite.Require().Len(retrievedOrder.History(), 1)
	suite.Equal("op-1", retrievedOrder.History()[0].ActorID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_ReturnsMatchingOrdersWithHistory() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.createTestOrder()
	second := suite.createTestOrder()
	third := suite.createTestOrder()
	for _, o := range []*order.Order{first, second, third} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	record, err := second.ApplyTransition(order.Preparation, workflow.ScreenIntake, "", "op-1", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.UpdateWithHistory(ctx, second, record))

	inIntake, err := suite.repository.GetAllInStatus(ctx, order.Intake)
	suite.Require().NoError(err)
	suite.Len(inIntake, 2)

	inPreparation, err := suite.repository.GetAllInStatus(ctx, order.Preparation)
	suite.Require().NoError(err)
	suite.Require().Len(inPreparation, 1)
	suite.True(second.ID().IsEqual(inPreparation[0].ID()))
	suite.Len(inPreparation[0].History(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_NoMatches_ReturnsEmptySlice() {
	ctx := context.Background()

	orders, err := suite.repository.GetAllInStatus(ctx, order.Ready)
	suite.Require().NoError(err)
	suite.Empty(orders)
}

// createTestOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 3, 8)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
