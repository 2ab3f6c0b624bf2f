package cmd

import (
	"gorm.io/gorm"

	"bakery/internal/adapters/out/crypt"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStateCommandHandler() commands.ChangeOrderStateCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStateCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOrderCommentCommandHandler() commands.AddOrderCommentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderCommentCommandHandler(f)
}

func (c *CompositionRoot) CreateSeedDemoDataCommandHandler() commands.SeedDemoDataCommandHandler {
	var f commands.SeedUoWFactory = FuncSeedUoWFactory(func() commands.SeedUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedDemoDataCommandHandler(f, crypt.NewBcryptHasher())
}

func (c *CompositionRoot) CreateGetOrdersDueQueryHandler() queries.GetOrdersDueQueryHandler {
	return queries.NewGetOrdersDueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryStatsQueryHandler() queries.GetDeliveryStatsQueryHandler {
	return queries.NewGetDeliveryStatsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSeedUoWFactory func() commands.SeedUoW

func (f FuncSeedUoWFactory) Create() commands.SeedUoW {
	return f()
}
