package cmd

import (
	"tradlogistics/internal/adapters/out/postgres"
	"tradlogistics/internal/core/application/usecases/commands"
	"tradlogistics/internal/core/application/usecases/queries"
	"tradlogistics/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pricer     services.Pricer
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricer:     services.NewPricer(),
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoW() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.uow(), c.pricer)
}

func (c *CompositionRoot) CreateEditDeliveryCommandHandler() commands.EditDeliveryCommandHandler {
	return commands.NewEditDeliveryCommandHandler(c.deliveryUoW(), c.pricer)
}

func (c *CompositionRoot) CreateRemoveDeliveryCommandHandler() commands.RemoveDeliveryCommandHandler {
	return commands.NewRemoveDeliveryCommandHandler(c.deliveryUoW())
}

func (c *CompositionRoot) CreateStartSearchingCommandHandler() commands.StartSearchingCommandHandler {
	return commands.NewStartSearchingCommandHandler(c.deliveryUoW())
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.deliveryUoW())
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	return commands.NewAcceptDeliveryCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateRateDeliveryCommandHandler() commands.RateDeliveryCommandHandler {
	return commands.NewRateDeliveryCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateTipDeliveryCommandHandler() commands.TipDeliveryCommandHandler {
	return commands.NewTipDeliveryCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateDispatchScheduledCommandHandler() commands.DispatchScheduledCommandHandler {
	return commands.NewDispatchScheduledCommandHandler(c.deliveryUoW())
}

func (c *CompositionRoot) CreateGetCustomerDeliveriesQueryHandler() queries.GetCustomerDeliveriesQueryHandler {
	return queries.NewGetCustomerDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDeliveriesQueryHandler() queries.GetAvailableDeliveriesQueryHandler {
	return queries.NewGetAvailableDeliveriesQueryHandler(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
