package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bakery/internal/adapters/out/postgres/locationrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/location"
	"bakery/internal/core/domain/model/order"
)

type GetOrdersDueQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersDueQueryHandler

	store  *location.PickupLocation
	bakery *location.PickupLocation
}

func (suite *GetOrdersDueQueryHandlerTestSuite) SetupSuite() {
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
		&locationrepo.PickupLocationDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.HistoryItemDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersDueQueryHandler(db)
}

func (suite *GetOrdersDueQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersDueQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE pickup_locations, orders, order_items, order_history").Error
	suite.Require().NoError(err)

	suite.store = suite.seedLocation("Store")
	suite.bakery = suite.seedLocation("Bakery")
}

func (suite *GetOrdersDueQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersDueQuery(workDay())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersDueQueryHandlerTestSuite) TestHandle_OrdersDue_ReturnsWorkListSortedByDueTime() {
	day := workDay()

	lateOrder := suite.seedOrder(day, 16, "Charlie Fisher", suite.bakery)
	earlyOrder := suite.seedOrder(day, 8, "Alice Carroll", suite.store)
	middleOrder := suite.seedOrder(day, 12, "Bob Kent", suite.store)

	query, err := queries.NewGetOrdersDueQuery(day)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(earlyOrder.ID(), result[0].ID)
	suite.Equal("Alice Carroll", result[0].CustomerFullName)
	suite.Equal("08:00", result[0].DueTime.String())
	suite.Equal("Store", result[0].PickupLocationName)

	suite.Equal(middleOrder.ID(), result[1].ID)
	suite.Equal("Bob Kent", result[1].CustomerFullName)
	suite.Equal("12:00", result[1].DueTime.String())

	suite.Equal(lateOrder.ID(), result[2].ID)
	suite.Equal("Charlie Fisher", result[2].CustomerFullName)
	suite.Equal("Bakery", result[2].PickupLocationName)
}

func (suite *GetOrdersDueQueryHandlerTestSuite) TestHandle_OtherDays_AreExcluded() {
	day := workDay()

	suite.seedOrder(day, 10, "Alice Carroll", suite.store)
	suite.seedOrder(day.AddDate(0, 0, 1), 10, "Bob Kent", suite.store)
	suite.seedOrder(day.AddDate(0, 0, -1), 10, "Charlie Fisher", suite.bakery)

	query, err := queries.NewGetOrdersDueQuery(day)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Alice Carroll", result[0].CustomerFullName)
}

func (suite *GetOrdersDueQueryHandlerTestSuite) TestHandle_CarriesStatusAndPhone() {
	day := workDay()

	seeded := suite.seedOrder(day, 9, "Alice Carroll", suite.store)

	query, err := queries.NewGetOrdersDueQuery(day)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(seeded.Status(), result[0].Status)
	suite.Equal("+1-555-0101", result[0].CustomerPhone)
}

func (suite *GetOrdersDueQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersDueQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrGetOrdersDueQueryIsNotConstructed)
}

func (suite *GetOrdersDueQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.seedOrder(workDay(), 10, "Alice Carroll", suite.store)

	query, err := queries.NewGetOrdersDueQuery(workDay())
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetOrdersDueQueryHandlerTestSuite) seedLocation(name string) *location.PickupLocation {
	pickupLocation, err := location.NewPickupLocation(kernel.NewUUID(), name)
	suite.Require().NoError(err)

	repo := locationrepo.NewGormPickupLocationRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), pickupLocation))

	return pickupLocation
}

func (suite *GetOrdersDueQueryHandlerTestSuite) seedOrder(
	dueDate time.Time,
	hour int,
	customerName string,
	pickupLocation *location.PickupLocation,
) *order.Order {
	customer, err := order.NewCustomer(customerName, "+1-555-0101", "")
	suite.Require().NoError(err)

	dueTime, err := kernel.NewTimeOfDay(hour, 0)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		customer,
		pickupLocation.ID(),
		dueDate,
		dueTime,
		dueDate.Add(-48*time.Hour),
	)
	suite.Require().NoError(err)

	item, err := order.NewOrderItem(kernel.NewUUID(), 1, "")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.SetItems([]order.OrderItem{item}))

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), testOrder))

	return testOrder
}

func workDay() time.Time {
	return time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
}

func TestGetOrdersDueQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersDueQueryHandlerTestSuite))
}
