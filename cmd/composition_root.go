package cmd

import (
	"log/slog"

	httpin "cargofresh/internal/adapters/in/http"
	"cargofresh/internal/adapters/out/gemini"
	"cargofresh/internal/adapters/out/memory"
	"cargofresh/internal/adapters/out/memory/orderrepo"
	"cargofresh/internal/core/application/session"
	"cargofresh/internal/core/application/usecases/assistant"
	"cargofresh/internal/core/application/usecases/commands"
	"cargofresh/internal/core/application/usecases/queries"
	"cargofresh/internal/core/domain/services"
	"cargofresh/internal/core/ports"
	"cargofresh/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	store      *orderrepo.Store
	uowFactory *memory.MemoryUnitOfWorkFactory
	tariff     services.TariffEngine
	generator  ports.TextGenerator
	sessions   *session.Store
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	seed, err := orderrepo.DemoOrders()
	if err != nil {
		return nil, err
	}
	store, err := orderrepo.NewStore(seed...)
	if err != nil {
		return nil, err
	}

	tariff, err := services.NewTariffEngine(config.Rates())
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewClient(gemini.Config{
		BaseURL: config.GeminiBaseURL,
		Model:   config.GeminiModel,
		APIKey:  config.GeminiAPIKey,
		Timeout: config.GeminiTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		logger:     logger,
		store:      store,
		uowFactory: memory.NewMemoryUnitOfWorkFactory(store),
		tariff:     tariff,
		generator:  generator,
		sessions:   session.NewStore(nil),
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, nil)
}

func (c *CompositionRoot) CreateAuthorizeOrderCommandHandler() commands.AuthorizeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuthorizeOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateAskCargoBotQueryHandler() assistant.AskCargoBotQueryHandler {
	return assistant.NewAskCargoBotQueryHandler(c.generator, c.logger)
}

func (c *CompositionRoot) CreateAdvisePackagingQueryHandler() assistant.AdvisePackagingQueryHandler {
	return assistant.NewAdvisePackagingQueryHandler(c.generator, c.logger)
}

func (c *CompositionRoot) CreateSessionMachine() *session.Machine {
	create := c.CreateCreateOrderCommandHandler()
	authorize := c.CreateAuthorizeOrderCommandHandler()
	return session.NewMachine(c.tariff, &create, &authorize, c.logger)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateSessionMachine(),
		c.sessions,
		c.tariff,
		c.CreateListOrdersQueryHandler(),
		c.CreateGetDashboardSummaryQueryHandler(),
		c.CreateAskCargoBotQueryHandler(),
		c.CreateAdvisePackagingQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessions, c.config.SessionEvictionSchedule, c.config.SessionTTL, c.logger)
}

// orderReader reads committed orders straight from the store.
func (c *CompositionRoot) orderReader() queries.OrderReader {
	return orderrepo.NewMemoryOrderRepository(c.store, nil)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
