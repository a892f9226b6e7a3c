package queries_test

import (
	"context"
	"testing"
	"time"

	"freightflow/internal/adapters/out/postgres/deliveryrepo"
	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/delivery"
	"freightflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetActiveDeliveriesQueryHandler
	deliveryRepo *deliveryrepo.GormDeliveryRepository
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveDeliveriesQueryHandler(db)
	suite.deliveryRepo = deliveryrepo.NewGormDeliveryRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) addDeliveryInStatus(
	status delivery.Status,
	updatedAt time.Time,
) *delivery.Delivery {
	dlv, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"1234", status, updatedAt, updatedAt, 1)
	suite.Require().NoError(err)

	err = suite.deliveryRepo.Add(context.Background(), dlv)
	suite.Require().NoError(err)
	return dlv
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_WithOnlyTerminalDeliveries_ReturnsEmptySlice() {
	now := time.Now().UTC()
	suite.addDeliveryInStatus(delivery.Completed, now)
	suite.addDeliveryInStatus(delivery.Cancelled, now)

	query := queries.NewGetActiveDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_WithMixedStatuses_ReturnsOnlyActive() {
	now := time.Now().UTC()
	active1 := suite.addDeliveryInStatus(delivery.InProgress, now)
	active2 := suite.addDeliveryInStatus(delivery.InTransit, now)
	active3 := suite.addDeliveryInStatus(delivery.Delivered, now)
	suite.addDeliveryInStatus(delivery.Completed, now)
	suite.addDeliveryInStatus(delivery.Cancelled, now)

	query := queries.NewGetActiveDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	resultIDs := make(map[string]delivery.Status, len(result))
	for _, r := range result {
		resultIDs[r.ID.String()] = r.Status
	}
	suite.Equal(delivery.InProgress, resultIDs[active1.ID().String()])
	suite.Equal(delivery.InTransit, resultIDs[active2.ID().String()])
	suite.Equal(delivery.Delivered, resultIDs[active3.ID().String()])
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_ProjectsDeliveryFields() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	dlv := suite.addDeliveryInStatus(delivery.PickedUp, now)

	query := queries.NewGetActiveDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(dlv.ID()))
	suite.True(result[0].CargoRequestID.IsEqual(dlv.CargoRequestID()))
	suite.True(result[0].DriverID.IsEqual(dlv.DriverID()))
	suite.Equal(delivery.PickedUp, result[0].Status)
}

func TestGetActiveDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveDeliveriesQueryHandlerTestSuite))
}

// mockAggregateTracker implements the repositories' tracker for test purposes.
// It's a no-op implementation since we don't need aggregate tracking in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

func (m *mockAggregateTracker) GetTrackedAggregates() []any {
	return []any{}
}
