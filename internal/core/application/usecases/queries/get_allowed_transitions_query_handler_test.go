package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/tenantrepo"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllowedTransitionsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllowedTransitionsQueryHandler
}

func (suite *GetAllowedTransitionsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.TransitionRecordDTO{},
		&tenantrepo.TenantSettingsDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllowedTransitionsQueryHandler(db)
}

func (suite *GetAllowedTransitionsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllowedTransitionsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, transition_records, tenant_settings CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllowedTransitionsQueryHandlerTestSuite) seedOrder(
	orderID, tenantID kernel.UUID,
	status order.Status,
) {
	dto := orderrepo.OrderDTO{
		ID:          orderID.Bytes(),
		TenantID:    tenantID.Bytes(),
		Status:      int(status),
		ItemsCount:  3,
		PiecesTotal: 7,
		Version:     1,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *GetAllowedTransitionsQueryHandlerTestSuite) TestHandle_DefaultToggles() {
	orderID := kernel.NewUUID()
	suite.seedOrder(orderID, kernel.NewUUID(), order.Processing)

	query, err := queries.NewGetAllowedTransitionsQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.ElementsMatch([]string{"assembly", "cancelled"}, result)
}

func (suite *GetAllowedTransitionsQueryHandlerTestSuite) TestHandle_AssemblyDisabled() {
	orderID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	suite.seedOrder(orderID, tenantID, order.Processing)

	settings := tenantrepo.TenantSettingsDTO{
		TenantID:        tenantID.Bytes(),
		AssemblyEnabled: false,
		QaEnabled:       true,
		PackingEnabled:  true,
		UpdatedAt:       time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&settings).Error)

	query, err := queries.NewGetAllowedTransitionsQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.ElementsMatch([]string{"qa", "cancelled"}, result)
}

func (suite *GetAllowedTransitionsQueryHandlerTestSuite) TestHandle_TerminalOrder_ReturnsEmptySlice() {
	orderID := kernel.NewUUID()
	suite.seedOrder(orderID, kernel.NewUUID(), order.Cancelled)

	query, err := queries.NewGetAllowedTransitionsQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllowedTransitionsQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetAllowedTransitionsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(result)
}

func (suite *GetAllowedTransitionsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllowedTransitionsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetAllowedTransitionsQuery constructor")
	suite.Nil(result)
}

func TestGetAllowedTransitionsQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetAllowedTransitionsQueryHandlerTestSuite))
}
