package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"freightflow/internal/adapters/out/postgres/deliveryrepo"
	"freightflow/internal/core/domain/model/delivery"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"

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

// DeliveryRepositoryIntegrationTestSuite provides integration tests for
// DeliveryRepository using PostgreSQL containers to verify persistence
// behavior, including the versioned write.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) createTestDelivery() *delivery.Delivery {
	dlv, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "4812")
	suite.Require().NoError(err)
	return dlv
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ValidDelivery_Success() {
	ctx := context.Background()
	testDelivery := suite.createTestDelivery()

	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Once()

	err := suite.repository.Add(ctx, testDelivery)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&deliveryrepo.DeliveryDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_UnconstructedDelivery_Fails() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &delivery.Delivery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, delivery.ErrDeliveryIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_ExistingDelivery_RoundTrips() {
	ctx := context.Background()
	testDelivery := suite.createTestDelivery()

	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))

	loaded, err := suite.repository.Get(ctx, testDelivery.ID())

	suite.Require().NoError(err)
	suite.Require().NotNil(loaded)
	suite.True(loaded.IsEqual(testDelivery))
	suite.True(loaded.CargoRequestID().IsEqual(testDelivery.CargoRequestID()))
	suite.True(loaded.DriverID().IsEqual(testDelivery.DriverID()))
	suite.Equal(testDelivery.ConfirmationCode(), loaded.ConfirmationCode())
	suite.Equal(delivery.InProgress, loaded.Status())
	suite.Equal(1, loaded.Version())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGet_UnknownDelivery_ReturnsNotFound() {
	ctx := context.Background()

	loaded, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Nil(loaded)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_MatchingVersion_PersistsAndBumpsVersion() {
	ctx := context.Background()
	testDelivery := suite.createTestDelivery()

	suite.tracker.On("TrackAggregate", testDelivery.ID(), testDelivery).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))

	_, err := testDelivery.Transition(delivery.PickedUp, "warehouse", "", "")
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, testDelivery)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.PickedUp, loaded.Status())
	suite.Equal(2, loaded.Version())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()
	testDelivery := suite.createTestDelivery()

	suite.tracker.On("TrackAggregate", testDelivery.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))

	// Two readers load the same row at version 1.
	first, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)

	_, err = first.Transition(delivery.PickedUp, "warehouse", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second writer still holds version 1 and must lose.
	_, err = second.Transition(delivery.Cancelled, "warehouse", "mistake", "")
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, second)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrentModification)

	loaded, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.PickedUp, loaded.Status())
	suite.Equal(2, loaded.Version())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_RereadAfterConflict_Succeeds() {
	ctx := context.Background()
	testDelivery := suite.createTestDelivery()

	suite.tracker.On("TrackAggregate", testDelivery.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testDelivery))

	_, err := testDelivery.Transition(delivery.PickedUp, "warehouse", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testDelivery))

	// Retry with fresh state after a conflict.
	fresh, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	_, err = fresh.Transition(delivery.InTransit, "highway", "", "")
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, fresh)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, testDelivery.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.InTransit, loaded.Status())
	suite.Equal(3, loaded.Version())
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
