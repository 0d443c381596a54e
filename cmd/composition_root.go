package cmd

import (
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/rediscache"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs       Config
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	settingsCache *rediscache.SettingsCache
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	settingsCache := rediscache.NewSettingsCache(
		redisClient,
		uowFactory.Create().TenantSettingsRepository(),
		configs.SettingsCacheTTL,
	)

	return CompositionRoot{
		configs:       configs,
		gormDB:        gormDB,
		uowFactory:    *uowFactory,
		settingsCache: settingsCache,
	}
}

func (c *CompositionRoot) SettingsCache() *rediscache.SettingsCache {
	return c.settingsCache
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestTransitionCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRackLocationCommandHandler() commands.SetRackLocationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRackLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireReadyOrdersCommandHandler() commands.ExpireReadyOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireReadyOrdersCommandHandler(
		f,
		c.CreateRequestTransitionCommandHandler(),
		c.configs.ReadyRetention,
	)
}

func (c *CompositionRoot) CreateGetAllowedTransitionsQueryHandler() queries.GetAllowedTransitionsQueryHandler {
	return queries.NewGetAllowedTransitionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkflowContextQueryHandler() queries.GetWorkflowContextQueryHandler {
	return queries.NewGetWorkflowContextQueryHandler(c.gormDB, c.settingsCache)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
