package cmd

import (
	"log/slog"

	"fieldops/internal/adapters/out/memstore"
	"fieldops/internal/adapters/out/notify"
	"fieldops/internal/adapters/out/photostore"
	"fieldops/internal/adapters/out/refdata"
	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
	"fieldops/internal/jobs"
)

type CompositionRoot struct {
	store      *memstore.Store
	uowFactory *memstore.UnitOfWorkFactory
	policy     services.AccessPolicy
	directory  *refdata.Directory
	notifier   ports.Notifier
	photos     ports.PhotoStorage
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, logger *slog.Logger) CompositionRoot {
	store := memstore.NewStore()
	return CompositionRoot{
		store:      store,
		uowFactory: memstore.NewUnitOfWorkFactory(store),
		policy:     services.NewAccessPolicy(),
		directory:  refdata.NewSeededDirectory(),
		notifier:   notify.NewSlogNotifier(logger),
		photos:     photostore.NewMemoryPhotoStore(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactory, c.policy, c.directory)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	return commands.NewAssignPartnerCommandHandler(c.uowFactory, c.policy, c.directory)
}

func (c *CompositionRoot) CreateAssignTechnicianCommandHandler() commands.AssignTechnicianCommandHandler {
	return commands.NewAssignTechnicianCommandHandler(c.uowFactory, c.policy, c.directory)
}

func (c *CompositionRoot) CreateConfirmAppointmentCommandHandler() commands.ConfirmAppointmentCommandHandler {
	return commands.NewConfirmAppointmentCommandHandler(c.uowFactory, c.policy, c.notifier)
}

func (c *CompositionRoot) CreateStartWorkCommandHandler() commands.StartWorkCommandHandler {
	return commands.NewStartWorkCommandHandler(c.uowFactory, c.policy)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.uowFactory, c.policy)
}

func (c *CompositionRoot) CreateMarkUnableCommandHandler() commands.MarkUnableCommandHandler {
	return commands.NewMarkUnableCommandHandler(c.uowFactory, c.policy)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uowFactory, c.policy)
}

func (c *CompositionRoot) CreateRecordFeedbackCommandHandler() commands.RecordFeedbackCommandHandler {
	return commands.NewRecordFeedbackCommandHandler(c.uowFactory, c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store, c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.store, c.policy)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.store, c.policy)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.store, c.notifier, c.logger)
}

func (c *CompositionRoot) PhotoStorage() ports.PhotoStorage {
	return c.photos
}
