package queries_test

import (
	"context"
	"testing"
	"time"

	"freightflow/internal/adapters/out/postgres/trackingrepo"
	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/delivery"
	"freightflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDeliveryTrackingQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetDeliveryTrackingQueryHandler
	trackingRepo *trackingrepo.GormTrackingRepository
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&trackingrepo.TrackingDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDeliveryTrackingQueryHandler(db)
	suite.trackingRepo = trackingrepo.NewGormTrackingRepository(db, &mockAggregateTracker{})
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE delivery_trackings CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) appendRecord(
	deliveryID kernel.UUID,
	status delivery.Status,
	location string,
	reason string,
	createdAt time.Time,
) {
	record, err := delivery.NewTracking(
		kernel.NewUUID(), deliveryID, status, location, reason, "", createdAt)
	suite.Require().NoError(err)

	err = suite.trackingRepo.Append(context.Background(), record)
	suite.Require().NoError(err)
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) TestHandle_UnknownDelivery_ReturnsEmptySlice() {
	query, err := queries.NewGetDeliveryTrackingQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) TestHandle_ReturnsRecordsOldestFirst() {
	deliveryID := kernel.NewUUID()
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Append out of chronological order to exercise the sort.
	suite.appendRecord(deliveryID, delivery.InTransit, "highway", "", base.Add(2*time.Hour))
	suite.appendRecord(deliveryID, delivery.PickedUp, "warehouse", "", base.Add(time.Hour))
	suite.appendRecord(deliveryID, delivery.Delivered, "front door", "", base.Add(3*time.Hour))

	query, err := queries.NewGetDeliveryTrackingQuery(deliveryID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(delivery.PickedUp, result[0].Status)
	suite.Equal(delivery.InTransit, result[1].Status)
	suite.Equal(delivery.Delivered, result[2].Status)
	suite.Equal("warehouse", result[0].Location)
	suite.True(result[0].CreatedAt.Before(result[1].CreatedAt))
	suite.True(result[1].CreatedAt.Before(result[2].CreatedAt))
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) TestHandle_FiltersByDelivery() {
	deliveryID := kernel.NewUUID()
	otherID := kernel.NewUUID()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	suite.appendRecord(deliveryID, delivery.PickedUp, "warehouse", "", now)
	suite.appendRecord(otherID, delivery.Cancelled, "roadside", "engine failure", now)

	query, err := queries.NewGetDeliveryTrackingQuery(deliveryID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(delivery.PickedUp, result[0].Status)
	suite.Empty(result[0].Reason)
}

func (suite *GetDeliveryTrackingQueryHandlerTestSuite) TestHandle_PreservesCancellationReason() {
	deliveryID := kernel.NewUUID()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	suite.appendRecord(deliveryID, delivery.Cancelled, "roadside", "cargo damaged", now)

	query, err := queries.NewGetDeliveryTrackingQuery(deliveryID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(delivery.Cancelled, result[0].Status)
	suite.Equal("cargo damaged", result[0].Reason)
}

func TestGetDeliveryTrackingQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeliveryTrackingQueryHandlerTestSuite))
}

func TestNewGetDeliveryTrackingQuery(t *testing.T) {
	t.Run("should create query with a valid delivery id", func(t *testing.T) {
		deliveryID := kernel.NewUUID()

		query, err := queries.NewGetDeliveryTrackingQuery(deliveryID)

		require.NoError(t, err)
		assert.True(t, query.DeliveryID().IsEqual(deliveryID))
		require.NoError(t, query.Validate())
	})

	t.Run("should reject zero-value delivery id", func(t *testing.T) {
		_, err := queries.NewGetDeliveryTrackingQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("should reject query created without constructor", func(t *testing.T) {
		query := queries.GetDeliveryTrackingQuery{}

		err := query.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, queries.ErrGetDeliveryTrackingQueryIsNotConstructed)
	})
}
