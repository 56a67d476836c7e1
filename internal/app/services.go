package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Francis1918/citamed_backend/config"
	"github.com/Francis1918/citamed_backend/internal/service/appointment"
	"github.com/Francis1918/citamed_backend/internal/service/notification"
	"github.com/Francis1918/citamed_backend/internal/service/registry"
	"github.com/Francis1918/citamed_backend/internal/service/schedule"
	"github.com/Francis1918/citamed_backend/internal/storage"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideScheduleService,
		ProvideNotificationService,
		ProvideAppointmentService,
		ProvideRegistryService,
	),
)

func ProvideScheduleService(store storage.Store, cfg *config.Config) (schedule.Service, error) {
	return schedule.New(store, cfg.Scheduler, slog.Default())
}

func ProvideNotificationService(store storage.Store) notification.Service {
	return notification.New(store, slog.Default())
}

func ProvideAppointmentService(
	store storage.Store,
	sched schedule.Service,
	notifier notification.Service,
	cfg *config.Config,
) appointment.Service {
	return appointment.New(store, sched, notifier, cfg.Scheduler, cfg.Codes, slog.Default())
}

func ProvideRegistryService(store storage.Store) registry.Service {
	return registry.New(store, slog.Default())
}
