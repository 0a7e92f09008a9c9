package cmd

import (
	"fulfillment/internal/adapters/out/ecotrack"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    *ecotrack.Client
	mapper     services.CarrierStatusMapper
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    ecotrack.NewClient(configs.EcotrackBaseURL, configs.EcotrackAPIToken),
		mapper:     services.NewCarrierStatusMapper(),
	}
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateArchiveOrderCommandHandler() commands.ArchiveOrderCommandHandler {
	return commands.NewArchiveOrderCommandHandler(c.archivalUoWFactory())
}

func (c *CompositionRoot) CreateMarkRespondedCommandHandler() commands.MarkRespondedCommandHandler {
	return commands.NewMarkRespondedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetStatusCommandHandler() commands.SetStatusCommandHandler {
	return commands.NewSetStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateExpediateOrderCommandHandler() commands.ExpediateOrderCommandHandler {
	return commands.NewExpediateOrderCommandHandler(c.orderUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateExpediateBatchCommandHandler() commands.ExpediateBatchCommandHandler {
	return commands.NewExpediateBatchCommandHandler(c.orderUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateSyncStatusesCommandHandler() commands.SyncStatusesCommandHandler {
	return commands.NewSyncStatusesCommandHandler(c.orderUoWFactory(), c.gateway, c.mapper)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetArchivedOrdersQueryHandler() queries.GetArchivedOrdersQueryHandler {
	return queries.NewGetArchivedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) archivalUoWFactory() commands.ArchivalUoWFactory {
	return FuncArchivalUoWFactory(func() commands.ArchivalUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncArchivalUoWFactory func() commands.ArchivalUoW

func (f FuncArchivalUoWFactory) Create() commands.ArchivalUoW {
	return f()
}
