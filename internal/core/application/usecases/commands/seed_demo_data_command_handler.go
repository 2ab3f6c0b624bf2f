package commands

import (
	"context"

	"bakery/internal/core/domain/services"
)

// SeedDemoDataCommandHandler populates an empty database with the fabricated
// demonstration data set: staff users, a product catalog, pickup locations,
// and a multi-year order timeline.
//
// Seeding is idempotent at the database level: if any users already exist,
// the handler leaves the database untouched and reports success.
type SeedDemoDataCommandHandler struct {
	uowFactory SeedUoWFactory
	hasher     services.PasswordHasher
}

// NewSeedDemoDataCommandHandler creates a handler for demo-data seeding.
// Requires a SeedUoWFactory for transactional persistence and a password
// hasher for the generated user credentials.
func NewSeedDemoDataCommandHandler(
	uowFactory SeedUoWFactory,
	hasher services.PasswordHasher,
) SeedDemoDataCommandHandler {
	return SeedDemoDataCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the seeding command. Returns true if the database was
// seeded and false if it already held data and the command was a no-op.
// The entire data set is persisted in a single transaction.
func (h *SeedDemoDataCommandHandler) Handle(ctx context.Context, cmd SeedDemoDataCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	count, err := userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	generator := services.NewDemoDataGenerator(cmd.Seed(), h.hasher)
	dataSet, err := generator.Generate(cmd.Today())
	if err != nil {
		return false, err
	}

	for _, u := range dataSet.Users {
		if err = userRepo.Add(ctx, u); err != nil {
			return false, err
		}
	}

	productRepo := uow.ProductRepository()
	for _, p := range dataSet.Products {
		if err = productRepo.Add(ctx, p); err != nil {
			return false, err
		}
	}

	locationRepo := uow.PickupLocationRepository()
	for _, l := range dataSet.PickupLocations {
		if err = locationRepo.Add(ctx, l); err != nil {
			return false, err
		}
	}

	orderRepo := uow.OrderRepository()
	for _, o := range dataSet.Orders {
		if err = orderRepo.Add(ctx, o); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
